// SPDX-License-Identifier: GPL-2.0-or-later

package model

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

func init() {
	Register(".obj", loadOBJ)
}

func loadOBJ(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := parseOBJ(f)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to read obj %v", path)
	}
	return s, nil
}

type objIndex struct {
	v, vt, vn int
}

type objBuilder struct {
	positions [][3]float32
	normals   [][3]float32
	uvs       [][2]float32

	root       *Node
	mesh       *Mesh
	lookup     map[objIndex]uint32
	hasNormals bool
}

// parseOBJ reads a Wavefront OBJ file. Every 'o' and 'g' statement starts a
// new child node. Polygons are triangulated as fans and texture coordinates
// are flipped vertically.
func parseOBJ(r io.Reader) (*Scene, error) {
	b := &objBuilder{
		root: &Node{Name: "root"},
	}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		var err error
		switch fields[0] {
		case "v":
			var p [3]float32
			p, err = parseFloats3(fields[1:])
			b.positions = append(b.positions, p)
		case "vn":
			var n [3]float32
			n, err = parseFloats3(fields[1:])
			b.normals = append(b.normals, n)
		case "vt":
			var t [2]float32
			t, err = parseFloats2(fields[1:])
			b.uvs = append(b.uvs, [2]float32{t[0], 1 - t[1]})
		case "o", "g":
			name := ""
			if len(fields) > 1 {
				name = strings.Join(fields[1:], " ")
			}
			b.startMesh(name)
		case "f":
			err = b.face(fields[1:])
		}
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	b.finishMesh()
	return &Scene{Root: b.root}, nil
}

func (b *objBuilder) startMesh(name string) {
	b.finishMesh()
	b.mesh = &Mesh{Name: name}
	b.lookup = make(map[objIndex]uint32)
	b.hasNormals = true
}

func (b *objBuilder) finishMesh() {
	if b.mesh == nil || len(b.mesh.Indices) == 0 {
		b.mesh = nil
		return
	}
	if !b.hasNormals {
		generateNormals(b.mesh)
	}
	b.root.Children = append(b.root.Children, &Node{
		Name:   b.mesh.Name,
		Meshes: []*Mesh{b.mesh},
	})
	b.mesh = nil
}

func (b *objBuilder) face(refs []string) error {
	if len(refs) < 3 {
		return errors.Errorf("face with %d vertices", len(refs))
	}
	if b.mesh == nil {
		b.startMesh("")
	}
	idx := make([]uint32, 0, len(refs))
	for _, ref := range refs {
		i, err := b.vertex(ref)
		if err != nil {
			return err
		}
		idx = append(idx, i)
	}
	for i := 1; i+1 < len(idx); i++ {
		b.mesh.Indices = append(b.mesh.Indices, idx[0], idx[i], idx[i+1])
	}
	return nil
}

func (b *objBuilder) vertex(ref string) (uint32, error) {
	parts := strings.Split(ref, "/")
	var key objIndex
	var err error
	if key.v, err = objRef(parts[0], len(b.positions)); err != nil {
		return 0, err
	}
	if len(parts) > 1 && parts[1] != "" {
		if key.vt, err = objRef(parts[1], len(b.uvs)); err != nil {
			return 0, err
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if key.vn, err = objRef(parts[2], len(b.normals)); err != nil {
			return 0, err
		}
	}
	if i, ok := b.lookup[key]; ok {
		return i, nil
	}
	v := Vertex{
		Position: b.positions[key.v-1],
		Normal:   [3]float32{0, 1, 0},
	}
	if key.vt != 0 {
		v.TexCoord = b.uvs[key.vt-1]
	}
	if key.vn != 0 {
		v.Normal = b.normals[key.vn-1]
	} else {
		b.hasNormals = false
	}
	i := uint32(len(b.mesh.Vertices))
	b.mesh.Vertices = append(b.mesh.Vertices, v)
	b.lookup[key] = i
	return i, nil
}

// objRef turns a 1 based or negative relative reference into a 1 based one.
func objRef(s string, count int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if i < 0 {
		i = count + i + 1
	}
	if i < 1 || i > count {
		return 0, errors.Errorf("reference %s out of range", s)
	}
	return i, nil
}

func parseFloats3(f []string) ([3]float32, error) {
	var r [3]float32
	if len(f) < 3 {
		return r, errors.Errorf("want 3 values, got %d", len(f))
	}
	for i := range r {
		v, err := strconv.ParseFloat(f[i], 32)
		if err != nil {
			return r, err
		}
		r[i] = float32(v)
	}
	return r, nil
}

func parseFloats2(f []string) ([2]float32, error) {
	var r [2]float32
	if len(f) < 1 {
		return r, errors.Errorf("want 2 values, got %d", len(f))
	}
	for i := 0; i < 2 && i < len(f); i++ {
		v, err := strconv.ParseFloat(f[i], 32)
		if err != nil {
			return r, err
		}
		r[i] = float32(v)
	}
	return r, nil
}
