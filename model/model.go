// SPDX-License-Identifier: GPL-2.0-or-later

// Package model imports meshes from files. Importers hand back the
// hierarchy of the source file; Flatten merges it into one render batch.
package model

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Mesh is an indexed triangle list.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
}

type Node struct {
	Name     string
	Meshes   []*Mesh
	Children []*Node
}

type Scene struct {
	Root *Node
}

// Flatten merges all meshes of the hierarchy into one mesh in depth first
// order: the meshes of a node come before the meshes of its children.
// Node transforms of the source hierarchy are not applied.
func (s *Scene) Flatten() *Mesh {
	out := &Mesh{}
	if s == nil || s.Root == nil {
		return out
	}
	var walk func(n *Node)
	walk = func(n *Node) {
		for _, m := range n.Meshes {
			base := uint32(len(out.Vertices))
			out.Vertices = append(out.Vertices, m.Vertices...)
			for _, i := range m.Indices {
				out.Indices = append(out.Indices, base+i)
			}
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(s.Root)
	return out
}

// MeshCount returns the number of meshes in the whole hierarchy.
func (s *Scene) MeshCount() int {
	if s == nil || s.Root == nil {
		return 0
	}
	c := 0
	var walk func(n *Node)
	walk = func(n *Node) {
		c += len(n.Meshes)
		for _, ch := range n.Children {
			walk(ch)
		}
	}
	walk(s.Root)
	return c
}

// generateNormals sets smooth vertex normals from the triangle list.
func generateNormals(m *Mesh) {
	acc := make([]mgl32.Vec3, len(m.Vertices))
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		if int(a) >= len(acc) || int(b) >= len(acc) || int(c) >= len(acc) {
			continue
		}
		pa := mgl32.Vec3(m.Vertices[a].Position)
		pb := mgl32.Vec3(m.Vertices[b].Position)
		pc := mgl32.Vec3(m.Vertices[c].Position)
		n := pb.Sub(pa).Cross(pc.Sub(pa))
		acc[a] = acc[a].Add(n)
		acc[b] = acc[b].Add(n)
		acc[c] = acc[c].Add(n)
	}
	for i := range m.Vertices {
		if acc[i].Len() == 0 {
			m.Vertices[i].Normal = [3]float32{0, 1, 0}
			continue
		}
		m.Vertices[i].Normal = acc[i].Normalize()
	}
}
