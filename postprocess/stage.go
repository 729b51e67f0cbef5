// SPDX-License-Identifier: GPL-2.0-or-later

// Package postprocess renders the scene into an offscreen target and copies
// it to the screen through a selectable color transform.
package postprocess

import (
	"log"

	"github.com/pkg/errors"

	"goscene/conlog"
	"goscene/gpu"
)

// QuadVertices is the number of vertices of the full screen quad.
const QuadVertices = 6

// two triangles, position and uv
var (
	quadPositions = []float32{
		-1, 1, -1, -1, 1, -1,
		-1, 1, 1, -1, 1, 1,
	}
	quadUVs = []float32{
		0, 1, 0, 0, 1, 0,
		0, 1, 1, 0, 1, 1,
	}
)

type Stage struct {
	dev    gpu.Device
	prog   gpu.Program
	quad   gpu.Geometry
	target gpu.Target
	mode   Mode

	width  int32
	height int32
}

// New builds the quad and the offscreen target of the given size. A shader
// that fails to build is logged, the stage then skips the final copy.
func New(dev gpu.Device, width, height int32) *Stage {
	s := &Stage{dev: dev}
	p, err := dev.Program(shader)
	if err != nil {
		log.Printf("post process disabled: %v", err)
	}
	s.prog = p
	s.quad = dev.NewGeometry(&gpu.GeometryData{
		Primitive: gpu.Triangles,
		Attributes: []gpu.Attribute{
			{Size: 2, Data: quadPositions},
			{Size: 2, Data: quadUVs},
		},
	})
	s.Resize(width, height)
	return s
}

// Resize replaces the offscreen target when the size changed.
func (s *Stage) Resize(width, height int32) {
	if s.target != nil && width == s.width && height == s.height {
		return
	}
	if s.target != nil {
		s.target.Delete()
	}
	s.width, s.height = width, height
	t, err := s.dev.NewTarget(width, height)
	if err != nil {
		log.Printf("%v", errors.Wrapf(err, "offscreen target %dx%d", width, height))
	}
	s.target = t
}

func (s *Stage) Target() gpu.Target {
	return s.target
}

func (s *Stage) Size() (int32, int32) {
	return s.width, s.height
}

func (s *Stage) Mode() Mode {
	return s.mode
}

func (s *Stage) SetMode(m Mode) {
	s.mode = Wrap(int(m))
}

// Cycle switches to the next mode and reports it on the console.
func (s *Stage) Cycle() Mode {
	s.mode = s.mode.Next()
	conlog.Printf("Effect: %v\n", s.mode)
	return s.mode
}

// Bind makes the offscreen target the render destination.
func (s *Stage) Bind() {
	s.dev.BindTarget(s.target)
	s.dev.Viewport(s.width, s.height)
}

// Present draws the offscreen color buffer to the default framebuffer.
func (s *Stage) Present() {
	s.dev.BindTarget(nil)
	s.dev.Viewport(s.width, s.height)
	s.dev.SetDepthTest(false)
	s.dev.Clear(true, false)
	if s.prog == nil {
		return
	}
	s.prog.Use()
	s.prog.SetInt("mode", int32(s.mode))
	s.prog.SetInt("screenTexture", 0)
	if s.target != nil {
		s.target.Bind(0)
	}
	s.quad.Draw()
}

func (s *Stage) Release() {
	if s.target != nil {
		s.target.Delete()
		s.target = nil
	}
	s.quad.Delete()
}
