// SPDX-License-Identifier: GPL-2.0-or-later

package scenefile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"goscene/filesystem"
)

const demo = `# demo
TERRAIN 50 50 256 256 height-map.png

LIGHT 5 50 5 1 1 0.9
MESH "a.obj" 1 2 3 0.95
  mesh ghost.obj -2 8 0 0.3
FOG 1 2 3
`

func TestParse(t *testing.T) {
	recs, err := Parse(strings.NewReader(demo))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(recs) != 4 {
		t.Fatalf("got %d records, want 4", len(recs))
	}
	want := []Record{
		{Line: 2, Kind: Terrain, Width: 50, Depth: 50, XSlices: 256, ZSlices: 256, Path: "height-map.png"},
		{Line: 4, Kind: Light, Position: mgl32.Vec3{5, 50, 5}, Color: mgl32.Vec3{1, 1, 0.9}},
		{Line: 5, Kind: Mesh, Path: "a.obj", Position: mgl32.Vec3{1, 2, 3}, Opacity: 0.95},
		{Line: 6, Kind: Mesh, Path: "ghost.obj", Position: mgl32.Vec3{-2, 8, 0}, Opacity: 0.3},
	}
	for i := range want {
		if recs[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, recs[i], want[i])
		}
	}
}

func TestParseMissingFields(t *testing.T) {
	recs, err := Parse(strings.NewReader("MESH b.obj 1 x\nLIGHT\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].Position != (mgl32.Vec3{1, 0, 0}) || recs[0].Opacity != 0 {
		t.Errorf("mesh = %+v", recs[0])
	}
	if recs[1].Position != (mgl32.Vec3{}) || recs[1].Color != (mgl32.Vec3{}) {
		t.Errorf("light = %+v", recs[1])
	}
}

func TestParseSlashes(t *testing.T) {
	recs, err := Parse(strings.NewReader(`MESH assets//cat.obj 1 2 3 1
MESH "//share/cat.obj" 1 2 3 1
MESH cat.obj 1 2 3 1 // left cat
MESH //share/cat.obj 1 2 3 1
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(recs) != 4 {
		t.Fatalf("got %d records, want 4", len(recs))
	}
	for i, want := range []string{"assets//cat.obj", "//share/cat.obj", "cat.obj", ""} {
		if recs[i].Path != want {
			t.Errorf("record %d path = %q, want %q", i, recs[i].Path, want)
		}
	}
	if recs[2].Opacity != 1 {
		t.Errorf("comment changed the opacity: %v", recs[2].Opacity)
	}
	if recs[3].Position != (mgl32.Vec3{}) {
		t.Errorf("numbers read after a comment: %v", recs[3].Position)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "demo.scene"), []byte(demo), 0o644); err != nil {
		t.Fatal(err)
	}
	filesystem.UseBaseDir(dir)
	recs, err := Load("demo.scene")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(recs) != 4 {
		t.Errorf("got %d records", len(recs))
	}
	if _, err := Load("none.scene"); err == nil {
		t.Errorf("Load of a missing file succeeded")
	}
}
