// SPDX-License-Identifier: GPL-2.0-or-later

package image

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"goscene/filesystem"
)

func writePNG(t *testing.T, dir, name string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	img.Set(1, 0, color.NRGBA{255, 255, 255, 128})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadRGBA(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "red.png")
	filesystem.UseBaseDir(dir)

	p, err := Load("red.png", RGBA)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p.Width != 2 || p.Height != 1 || p.Channels != RGBA || len(p.Pix) != 8 {
		t.Fatalf("Load = %dx%d ch %d len %d", p.Width, p.Height, p.Channels, len(p.Pix))
	}
	if got := p.At(0, 0); !bytes.Equal(got, []byte{255, 0, 0, 255}) {
		t.Errorf("At(0,0) = %v", got)
	}
	if got := p.At(1, 0); !bytes.Equal(got, []byte{255, 255, 255, 128}) {
		t.Errorf("At(1,0) = %v", got)
	}
}

func TestLoadGray(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "red.png")
	filesystem.UseBaseDir(dir)

	p, err := Load("red.png", Gray)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p.Channels != Gray || len(p.Pix) != 2 {
		t.Fatalf("Load = ch %d len %d", p.Channels, len(p.Pix))
	}
	if want := luminance(255, 0, 0); p.Pix[0] != want {
		t.Errorf("red luminance = %d, want %d", p.Pix[0], want)
	}
}

func TestLoadMissing(t *testing.T) {
	filesystem.UseBaseDir(t.TempDir())
	if _, err := Load("missing.png", RGBA); err == nil {
		t.Errorf("Load(missing) succeeded")
	}
}

func TestLoadBadChannels(t *testing.T) {
	if _, err := Load("any.png", 3); err == nil {
		t.Errorf("Load with 3 channels succeeded")
	}
}

func TestLuminance(t *testing.T) {
	for _, tc := range []struct {
		r, g, b uint8
		want    uint8
	}{
		{0, 0, 0, 0},
		{255, 255, 255, 255},
		{128, 128, 128, 128},
	} {
		if got := luminance(tc.r, tc.g, tc.b); got != tc.want {
			t.Errorf("luminance(%d,%d,%d) = %d, want %d", tc.r, tc.g, tc.b, got, tc.want)
		}
	}
}

func TestDecodeTGA(t *testing.T) {
	var buf bytes.Buffer
	h := tgaHeader{
		ImageType: 2,
		Width:     1,
		Height:    2,
		PixelSize: 24,
	}
	if err := binary.Write(&buf, binary.LittleEndian, h); err != nil {
		t.Fatal(err)
	}
	// bottom row first, BGR
	buf.Write([]byte{0, 0, 255})
	buf.Write([]byte{255, 0, 0})

	img, err := decodeTGA(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("decodeTGA failed: %v", err)
	}
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{0, 0, 255, 255}) {
		t.Errorf("top pixel = %v, want blue", got)
	}
	if got := img.NRGBAAt(0, 1); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("bottom pixel = %v, want red", got)
	}
}
