// SPDX-License-Identifier: GPL-2.0-or-later

package scene

import (
	"log"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"

	"goscene/filesystem"
	"goscene/scenefile"
)

// TexturePath is the texture used for a mesh file: the same name with a png
// extension.
func TexturePath(meshPath string) string {
	return filesystem.StripExt(meshPath) + ".png"
}

// AddTerrain creates a terrain node under the root using the fog and height
// settings of the scene.
func (s *Scene) AddTerrain(width, depth float32, xSlices, zSlices int, heightMap string) *Node {
	t := NewTerrain(s.dev, width, depth, xSlices, zSlices, heightMap)
	t.MaxHeight = s.settings.MaxHeight
	t.FogColor = s.settings.FogColor
	t.FogDensity = s.settings.FogDensity
	n := NewNode("terrain")
	n.SetComponent(t)
	s.root.AddChild(n)
	return n
}

func (s *Scene) AddLight(position, color mgl32.Vec3) *Node {
	n := NewNode("light")
	n.Position = position
	n.SetComponent(NewLight(color))
	s.root.AddChild(n)
	return n
}

func (s *Scene) AddMesh(path string, position mgl32.Vec3, opacity float32) *Node {
	m := NewMesh(s.dev, path, TexturePath(path))
	m.SetOpacity(opacity)
	n := NewNode(filepath.Base(path))
	n.Position = position
	n.SetComponent(m)
	s.root.AddChild(n)
	return n
}

// Load adds one node per record under the root, in record order, and
// updates the matrices.
func (s *Scene) Load(recs []scenefile.Record) []*Node {
	nodes := make([]*Node, 0, len(recs))
	for _, r := range recs {
		var n *Node
		switch r.Kind {
		case scenefile.Terrain:
			n = s.AddTerrain(r.Width, r.Depth, r.XSlices, r.ZSlices, r.Path)
		case scenefile.Light:
			n = s.AddLight(r.Position, r.Color)
		case scenefile.Mesh:
			n = s.AddMesh(r.Path, r.Position, r.Opacity)
		default:
			log.Printf("scene line %d: %v records are not supported", r.Line, r.Kind)
			continue
		}
		nodes = append(nodes, n)
	}
	s.root.Update()
	return nodes
}

// Demo file names, looked up on the asset search path.
const (
	DemoHeightMap = "height-map.png"
	DemoMesh      = "cat.obj"
)

// LoadDemo builds the default scene: a terrain below two cats, the left one
// opaque and spinning, the right one a translucent ghost spinning the other
// way and floating up and down.
func (s *Scene) LoadDemo() {
	t := s.AddTerrain(50, 50, 256, 256, DemoHeightMap)
	t.Position = mgl32.Vec3{0, -2, 0}

	cat := s.AddMesh(DemoMesh, mgl32.Vec3{-2, 8, 0}, 1)
	cat.Name = "cat"
	s.Animate(cat, &Spin{Rate: mgl32.Vec3{0, 50, 0}})

	ghost := s.AddMesh(DemoMesh, mgl32.Vec3{2, 8, 0}, 0.4)
	ghost.Name = "ghost"
	s.Animate(ghost, &Spin{Rate: mgl32.Vec3{0, -50, 0}})
	s.Animate(ghost, &Bob{Base: ghost.Position, Amplitude: 0.5, Frequency: 2})

	s.root.Update()
}
