// SPDX-License-Identifier: GPL-2.0-or-later

package model

import (
	"log"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

func init() {
	Register(".gltf", loadGLTF)
	Register(".glb", loadGLTF)
}

func loadGLTF(path string) (*Scene, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to read gltf %v", path)
	}
	return gltfScene(doc)
}

func gltfScene(doc *gltf.Document) (*Scene, error) {
	root := &Node{Name: "root"}
	var roots []uint32
	switch {
	case doc.Scene != nil && int(*doc.Scene) < len(doc.Scenes):
		roots = doc.Scenes[*doc.Scene].Nodes
	case len(doc.Scenes) > 0:
		roots = doc.Scenes[0].Nodes
	default:
		for i := range doc.Nodes {
			roots = append(roots, uint32(i))
		}
	}

	meshes := make(map[uint32]*Mesh)
	var build func(id uint32, depth int) (*Node, error)
	build = func(id uint32, depth int) (*Node, error) {
		if int(id) >= len(doc.Nodes) {
			return nil, errors.Errorf("node %d out of range", id)
		}
		if depth > len(doc.Nodes) {
			return nil, errors.Errorf("node hierarchy has a cycle")
		}
		gn := doc.Nodes[id]
		n := &Node{Name: gn.Name}
		if gn.Mesh != nil {
			m, ok := meshes[*gn.Mesh]
			if !ok {
				var err error
				m, err = gltfMesh(doc, *gn.Mesh)
				if err != nil {
					return nil, err
				}
				meshes[*gn.Mesh] = m
			}
			n.Meshes = append(n.Meshes, m)
		}
		for _, c := range gn.Children {
			cn, err := build(c, depth+1)
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, cn)
		}
		return n, nil
	}
	for _, id := range roots {
		n, err := build(id, 0)
		if err != nil {
			return nil, err
		}
		root.Children = append(root.Children, n)
	}
	return &Scene{Root: root}, nil
}

func gltfMesh(doc *gltf.Document, id uint32) (*Mesh, error) {
	if int(id) >= len(doc.Meshes) {
		return nil, errors.Errorf("mesh %d out of range", id)
	}
	gm := doc.Meshes[id]
	m := &Mesh{Name: gm.Name}
	hasNormals := true
	for _, p := range gm.Primitives {
		if p.Mode != gltf.PrimitiveTriangles {
			log.Printf("Skipping non triangle primitive of mesh %q", gm.Name)
			continue
		}
		pi, ok := p.Attributes["POSITION"]
		if !ok {
			log.Printf("One of mesh %q primitives has no positions", gm.Name)
			continue
		}
		positions, err := modeler.ReadPosition(doc, doc.Accessors[pi], nil)
		if err != nil {
			return nil, errors.Wrapf(err, "Failed to read mesh %q positions", gm.Name)
		}
		var normals [][3]float32
		if ni, ok := p.Attributes["NORMAL"]; ok {
			normals, err = modeler.ReadNormal(doc, doc.Accessors[ni], nil)
			if err != nil {
				return nil, errors.Wrapf(err, "Failed to read mesh %q normals", gm.Name)
			}
		}
		if len(normals) != len(positions) {
			hasNormals = false
		}
		var uvs [][2]float32
		if ti, ok := p.Attributes["TEXCOORD_0"]; ok {
			uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[ti], nil)
			if err != nil {
				return nil, errors.Wrapf(err, "Failed to read mesh %q texture coordinates", gm.Name)
			}
		}
		var indices []uint32
		if p.Indices != nil {
			indices, err = modeler.ReadIndices(doc, doc.Accessors[*p.Indices], nil)
			if err != nil {
				return nil, errors.Wrapf(err, "Failed to read mesh %q indices", gm.Name)
			}
		} else {
			indices = make([]uint32, len(positions))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}

		base := uint32(len(m.Vertices))
		for i, pos := range positions {
			v := Vertex{Position: pos, Normal: [3]float32{0, 1, 0}}
			if i < len(normals) {
				v.Normal = normals[i]
			}
			if i < len(uvs) {
				v.TexCoord = uvs[i]
			}
			m.Vertices = append(m.Vertices, v)
		}
		for _, i := range indices {
			m.Indices = append(m.Indices, base+i)
		}
	}
	if !hasNormals {
		generateNormals(m)
	}
	return m, nil
}
