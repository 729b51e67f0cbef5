// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"github.com/go-gl/gl/v4.6-core/gl"

	"goscene/gpu"
)

type Geometry struct {
	vao   *VertexArray
	vbos  []*Buffer
	ebo   *Buffer
	mode  uint32
	count int32
}

func newGeometry(d *gpu.GeometryData) *Geometry {
	g := &Geometry{
		vao:   NewVertexArray(),
		mode:  gl.TRIANGLES,
		count: int32(d.ElementCount()),
	}
	if d.Primitive == gpu.TriangleStrip {
		g.mode = gl.TRIANGLE_STRIP
	}
	g.vao.Bind()
	defer gl.BindVertexArray(0)
	for i, a := range d.Attributes {
		b := NewBuffer(gl.ARRAY_BUFFER)
		b.Bind()
		if len(a.Data) > 0 {
			b.SetData(4*len(a.Data), gl.Ptr(a.Data))
		}
		gl.EnableVertexAttribArray(uint32(i))
		gl.VertexAttribPointer(uint32(i), a.Size, gl.FLOAT, false, 0, nil)
		g.vbos = append(g.vbos, b)
	}
	if d.Indices != nil {
		g.ebo = NewBuffer(gl.ELEMENT_ARRAY_BUFFER)
		g.ebo.Bind()
		if len(d.Indices) > 0 {
			g.ebo.SetData(4*len(d.Indices), gl.Ptr(d.Indices))
		}
	}
	checkError("geometry upload")
	return g
}

func (g *Geometry) Draw() {
	if g.count == 0 {
		return
	}
	g.vao.Bind()
	if g.ebo != nil {
		gl.DrawElements(g.mode, g.count, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(g.mode, 0, g.count)
	}
	gl.BindVertexArray(0)
}

func (g *Geometry) Delete() {
	for _, b := range g.vbos {
		b.Delete()
	}
	if g.ebo != nil {
		g.ebo.Delete()
	}
	g.vao.Delete()
}
