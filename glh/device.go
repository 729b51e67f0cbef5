// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"log"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/pkg/errors"

	"goscene/gpu"
	"goscene/image"
)

// Device is the OpenGL gpu.Device. It must only be used on the thread that
// owns the current context.
type Device struct {
	programs map[string]*Program
}

var _ gpu.Device = (*Device)(nil)

// NewDevice expects a current context with loaded function pointers.
func NewDevice() *Device {
	gl.DepthFunc(gl.LEQUAL)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	return &Device{
		programs: make(map[string]*Program),
	}
}

// Program compiles src once per Name and hands out the shared program
// afterwards.
func (d *Device) Program(src *gpu.ShaderSource) (gpu.Program, error) {
	if p, ok := d.programs[src.Name]; ok {
		return p, nil
	}
	p, err := NewProgram(src.Vertex, src.Fragment)
	if err != nil {
		return nil, errors.Wrapf(err, "program %s", src.Name)
	}
	log.Printf("Compiled program %s", src.Name)
	d.programs[src.Name] = p
	return p, nil
}

// Release deletes all cached programs.
func (d *Device) Release() {
	for n, p := range d.programs {
		p.Delete()
		delete(d.programs, n)
	}
}

func (d *Device) NewGeometry(g *gpu.GeometryData) gpu.Geometry {
	return newGeometry(g)
}

func (d *Device) NewTexture2D(p *image.Pixels, o gpu.TextureOptions) gpu.Texture {
	return newTexture2D(p, o)
}

func (d *Device) NewTextureCube(faces [6]*image.Pixels) gpu.Texture {
	return newTextureCube(faces)
}

func (d *Device) NewTarget(width, height int32) (gpu.Target, error) {
	t, err := newTarget(width, height)
	return t, err
}

func (d *Device) BindTarget(t gpu.Target) {
	if t == nil {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		return
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.(*Target).fbo.id)
}

func (d *Device) Viewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}

func (d *Device) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (d *Device) Clear(color, depth bool) {
	var mask uint32
	if color {
		mask |= gl.COLOR_BUFFER_BIT
	}
	if depth {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	if mask != 0 {
		gl.Clear(mask)
	}
}

func enable(c uint32, on bool) {
	if on {
		gl.Enable(c)
	} else {
		gl.Disable(c)
	}
}

func (d *Device) SetDepthTest(on bool) {
	enable(gl.DEPTH_TEST, on)
}

func (d *Device) SetDepthMask(write bool) {
	gl.DepthMask(write)
}

func (d *Device) SetBlend(on bool) {
	enable(gl.BLEND, on)
}
