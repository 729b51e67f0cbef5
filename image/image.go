// SPDX-License-Identifier: GPL-2.0-or-later

package image

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/draw"
	"io"
	"log"
	"strings"

	// decoders used by image.Decode
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/pkg/errors"

	"goscene/filesystem"
)

type Channels int

const (
	Gray Channels = 1
	RGBA Channels = 4
)

// Pixels is a tightly packed 8bit image, rows top to bottom.
type Pixels struct {
	Width    int
	Height   int
	Channels Channels
	Pix      []byte
}

// At returns the channel values of the pixel at x, y.
func (p *Pixels) At(x, y int) []byte {
	o := (y*p.Width + x) * int(p.Channels)
	return p.Pix[o : o+int(p.Channels)]
}

// Load reads the named image from the asset search path and converts it to
// the requested channel layout.
func Load(name string, ch Channels) (*Pixels, error) {
	if ch != Gray && ch != RGBA {
		return nil, errors.Errorf("unsupported channel count %d", ch)
	}
	f, err := filesystem.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var img image.Image
	if strings.EqualFold(filesystem.Ext(name), ".tga") {
		img, err = decodeTGA(f)
	} else {
		img, _, err = image.Decode(f)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %v", name)
	}
	p := convert(img, ch)
	log.Printf("Loaded %v (%dx%d)", name, p.Width, p.Height)
	return p, nil
}

func convert(img image.Image, ch Channels) *Pixels {
	b := img.Bounds()
	p := &Pixels{
		Width:    b.Dx(),
		Height:   b.Dy(),
		Channels: ch,
	}
	if ch == RGBA {
		nrgba, ok := img.(*image.NRGBA)
		if !ok || nrgba.Stride != 4*p.Width || nrgba.Rect.Min != (image.Point{}) {
			nrgba = image.NewNRGBA(image.Rect(0, 0, p.Width, p.Height))
			draw.Draw(nrgba, nrgba.Rect, img, b.Min, draw.Src)
		}
		p.Pix = nrgba.Pix
		return p
	}
	p.Pix = make([]byte, p.Width*p.Height)
	if gray, ok := img.(*image.Gray); ok {
		for y := 0; y < p.Height; y++ {
			copy(p.Pix[y*p.Width:(y+1)*p.Width], gray.Pix[y*gray.Stride:])
		}
		return p
	}
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			p.Pix[y*p.Width+x] = luminance(uint8(r>>8), uint8(g>>8), uint8(bl>>8))
		}
	}
	return p
}

// luminance uses the integer weights of stb_image.
func luminance(r, g, b uint8) uint8 {
	return uint8((uint32(r)*77 + uint32(g)*150 + uint32(b)*29) >> 8)
}

type tgaHeader struct {
	IDLength       uint8
	ColormapType   uint8
	ImageType      uint8
	ColormapIndex  uint16
	ColormapLength uint16
	ColormapSize   uint8
	XOrigin        uint16
	YOrigin        uint16
	Width          uint16
	Height         uint16
	PixelSize      uint8
	Attributes     uint8
}

const tgaTopLeft = 0x20

func decodeTGA(r io.ReadSeeker) (*image.NRGBA, error) {
	var header tgaHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("Invalid tga header: %v", err)
	}
	if header.ImageType != 2 {
		return nil, fmt.Errorf("TGA is not a type 2 (uncompressed true color)")
	}
	if header.ColormapType != 0 || (header.PixelSize != 32 && header.PixelSize != 24) {
		return nil, fmt.Errorf("TGA is not 24bit or 32bit")
	}
	if header.IDLength != 0 {
		// skip Image ID
		if _, err := r.Seek(int64(header.IDLength), io.SeekCurrent); err != nil {
			return nil, err
		}
	}

	width, height := int(header.Width), int(header.Height)
	nrgba := image.NewNRGBA(image.Rect(0, 0, width, height))
	bpp := int(header.PixelSize / 8)
	row := make([]uint8, width*bpp)
	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(r, row); err != nil {
			return nil, fmt.Errorf("Not enough pixels: %v", err)
		}
		// rows are stored bottom up unless the origin is top left
		dy := height - 1 - y
		if header.Attributes&tgaTopLeft != 0 {
			dy = y
		}
		for x := 0; x < width; x++ {
			s := row[x*bpp:]
			d := nrgba.Pix[dy*nrgba.Stride+x*4:]
			// stored as BGR(A)
			d[0] = s[2]
			d[1] = s[1]
			d[2] = s[0]
			if bpp == 4 {
				d[3] = s[3]
			} else {
				d[3] = 255
			}
		}
	}
	return nrgba, nil
}
