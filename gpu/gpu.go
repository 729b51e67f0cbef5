// SPDX-License-Identifier: GPL-2.0-or-later

// Package gpu describes the device the scene renders through. The OpenGL
// implementation lives in glh.
package gpu

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"goscene/image"
)

// ErrIncompleteTarget is returned together with a usable Target when the
// driver reports the offscreen framebuffer as incomplete.
var ErrIncompleteTarget = errors.New("framebuffer is not complete")

type Primitive int

const (
	Triangles Primitive = iota
	TriangleStrip
)

// Attribute is one tightly packed float vertex attribute. Attribute i of a
// GeometryData is bound to shader location i.
type Attribute struct {
	Size int32
	Data []float32
}

type GeometryData struct {
	Primitive  Primitive
	Attributes []Attribute
	// Indices is optional. Without indices the vertices are drawn as an array.
	Indices []uint32
}

// VertexCount returns the number of vertices described by the first attribute.
func (g *GeometryData) VertexCount() int {
	if len(g.Attributes) == 0 || g.Attributes[0].Size == 0 {
		return 0
	}
	return len(g.Attributes[0].Data) / int(g.Attributes[0].Size)
}

// ElementCount is the number of elements a draw call over g covers.
func (g *GeometryData) ElementCount() int {
	if g.Indices != nil {
		return len(g.Indices)
	}
	return g.VertexCount()
}

// ShaderSource identifies a program. Programs are cached by Name, so two
// sources with the same Name must carry the same code.
type ShaderSource struct {
	Name     string
	Vertex   string
	Fragment string
}

type Program interface {
	Use()
	SetMat4(name string, m mgl32.Mat4)
	SetVec3(name string, v mgl32.Vec3)
	SetFloat(name string, f float32)
	SetInt(name string, i int32)
}

// Geometry is GPU resident vertex data. Draw issues exactly one draw call.
type Geometry interface {
	Draw()
	Delete()
}

type Texture interface {
	Bind(unit uint32)
	Delete()
}

// Target is an offscreen color+depth render destination whose color buffer
// can be sampled as a texture.
type Target interface {
	Texture
	Size() (int32, int32)
}

type TextureOptions struct {
	Clamp   bool
	MipMaps bool
}

// Device creates GPU resources and controls the fixed function state the
// renderer relies on. All calls happen on the thread owning the context.
type Device interface {
	Program(src *ShaderSource) (Program, error)
	NewGeometry(d *GeometryData) Geometry
	NewTexture2D(p *image.Pixels, o TextureOptions) Texture
	// NewTextureCube expects the faces in the order -Z, -X, +Z, +X, +Y, -Y.
	NewTextureCube(faces [6]*image.Pixels) Texture
	NewTarget(width, height int32) (Target, error)

	// BindTarget makes t the render destination. nil selects the visible
	// default framebuffer.
	BindTarget(t Target)
	Viewport(width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(color, depth bool)
	SetDepthTest(enable bool)
	SetDepthMask(write bool)
	// SetBlend toggles source-alpha, one-minus-source-alpha blending.
	SetBlend(enable bool)
}
