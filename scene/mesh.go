// SPDX-License-Identifier: GPL-2.0-or-later

package scene

import (
	"log"

	"goscene/gpu"
	"goscene/image"
	"goscene/model"
)

// Mesh draws an imported model, all of its parts merged into one batch.
type Mesh struct {
	prog    gpu.Program
	geom    gpu.Geometry
	tex     gpu.Texture
	opacity float32

	vertices int
	indices  int
}

// NewMesh never fails. A model that can not be loaded gives an empty mesh, a
// missing texture leaves the texture unit unbound. Both are logged.
func NewMesh(dev gpu.Device, meshPath, texPath string) *Mesh {
	m := &Mesh{opacity: 1}
	p, err := dev.Program(meshShader)
	if err != nil {
		log.Printf("mesh %s: %v", meshPath, err)
	}
	m.prog = p

	if s, err := model.Load(meshPath); err != nil {
		log.Printf("Warning: mesh %s stays empty: %v", meshPath, err)
	} else {
		m.upload(dev, s.Flatten())
		if m.vertices == 0 {
			log.Printf("Warning: mesh %s has no vertices", meshPath)
		}
	}

	if texPath != "" {
		if px, err := image.Load(texPath, image.RGBA); err != nil {
			log.Printf("Warning: mesh %s without texture: %v", meshPath, err)
		} else {
			m.tex = dev.NewTexture2D(px, gpu.TextureOptions{MipMaps: true})
		}
	}
	return m
}

func (m *Mesh) upload(dev gpu.Device, data *model.Mesh) {
	if len(data.Vertices) == 0 || len(data.Indices) == 0 {
		return
	}
	pos := make([]float32, 0, 3*len(data.Vertices))
	nor := make([]float32, 0, 3*len(data.Vertices))
	uv := make([]float32, 0, 2*len(data.Vertices))
	for _, v := range data.Vertices {
		pos = append(pos, v.Position[:]...)
		nor = append(nor, v.Normal[:]...)
		uv = append(uv, v.TexCoord[:]...)
	}
	m.geom = dev.NewGeometry(&gpu.GeometryData{
		Primitive: gpu.Triangles,
		Attributes: []gpu.Attribute{
			{Size: 3, Data: pos},
			{Size: 3, Data: nor},
			{Size: 2, Data: uv},
		},
		Indices: data.Indices,
	})
	m.vertices = len(data.Vertices)
	m.indices = len(data.Indices)
}

// Opacity is passed to the shader as is, values outside [0,1] are not
// clamped.
func (m *Mesh) Opacity() float32 {
	return m.opacity
}

func (m *Mesh) SetOpacity(o float32) {
	m.opacity = o
}

func (m *Mesh) VertexCount() int { return m.vertices }
func (m *Mesh) IndexCount() int  { return m.indices }

func (m *Mesh) Draw(rc *RenderContext, n *Node) {
	if m.prog == nil {
		return
	}
	m.prog.Use()
	m.prog.SetMat4("projection", rc.Projection)
	m.prog.SetMat4("view", rc.View)
	m.prog.SetMat4("model", n.Global())
	m.prog.SetVec3("viewPos", rc.Eye)
	m.prog.SetVec3("lightPos", rc.LightPosition)
	m.prog.SetVec3("lightColor", rc.LightColor)
	m.prog.SetFloat("alpha", m.opacity)
	m.prog.SetInt("texture1", 0)
	if m.tex != nil {
		m.tex.Bind(0)
	}
	if m.geom != nil {
		m.geom.Draw()
	}
}

func (m *Mesh) Release() {
	if m.geom != nil {
		m.geom.Delete()
		m.geom = nil
	}
	if m.tex != nil {
		m.tex.Delete()
		m.tex = nil
	}
}
