// SPDX-License-Identifier: GPL-2.0-or-later

// Package gputest provides a gpu.Device that records what it is asked to do.
package gputest

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"goscene/gpu"
	"goscene/image"
)

// State is the fixed function state at the time of a draw.
type State struct {
	Target    string
	DepthTest bool
	DepthMask bool
	Blend     bool
}

type DrawCall struct {
	Program   string
	Primitive gpu.Primitive
	Count     int
	State     State
	// Uniforms is a copy of the program uniforms at draw time.
	Uniforms map[string]any
	// Textures maps texture unit to the bound texture label.
	Textures map[uint32]string
}

type Device struct {
	// Log holds one line per state change, bind, use and draw.
	Log   []string
	Draws []DrawCall

	// Compiles counts program builds, cached programs are not rebuilt.
	Compiles int
	// FailPrograms makes Program fail for the named sources.
	FailPrograms map[string]bool
	// IncompleteTargets makes NewTarget report gpu.ErrIncompleteTarget.
	IncompleteTargets bool

	// Live holds the labels of resources that were not deleted.
	Live map[string]bool

	programs map[string]*Program
	current  *Program
	state    State
	textures map[uint32]string
	next     int
}

var _ gpu.Device = (*Device)(nil)

func New() *Device {
	return &Device{
		FailPrograms: make(map[string]bool),
		Live:         make(map[string]bool),
		programs:     make(map[string]*Program),
		textures:     make(map[uint32]string),
		state:        State{Target: "default", DepthMask: true},
	}
}

func (d *Device) logf(format string, args ...any) {
	d.Log = append(d.Log, fmt.Sprintf(format, args...))
}

func (d *Device) label(kind string) string {
	d.next++
	l := fmt.Sprintf("%s#%d", kind, d.next)
	d.Live[l] = true
	return l
}

// Reset forgets the recorded log and draws, resources stay alive.
func (d *Device) Reset() {
	d.Log = nil
	d.Draws = nil
}

// ProgramByName returns the cached program of the given name.
func (d *Device) ProgramByName(name string) *Program {
	return d.programs[name]
}

func (d *Device) Program(src *gpu.ShaderSource) (gpu.Program, error) {
	if p, ok := d.programs[src.Name]; ok {
		return p, nil
	}
	if d.FailPrograms[src.Name] {
		return nil, errors.Errorf("Failed to link program: %s", src.Name)
	}
	d.Compiles++
	p := &Program{
		dev:      d,
		Name:     src.Name,
		Uniforms: make(map[string]any),
	}
	d.programs[src.Name] = p
	return p, nil
}

func (d *Device) NewGeometry(g *gpu.GeometryData) gpu.Geometry {
	return &Geometry{
		dev:       d,
		Label:     d.label("geometry"),
		Primitive: g.Primitive,
		Count:     g.ElementCount(),
		Data:      g,
	}
}

func (d *Device) NewTexture2D(p *image.Pixels, o gpu.TextureOptions) gpu.Texture {
	return &Texture{
		dev:    d,
		Label:  d.label(fmt.Sprintf("texture2d-%dx%d", p.Width, p.Height)),
		Pixels: []*image.Pixels{p},
	}
}

func (d *Device) NewTextureCube(faces [6]*image.Pixels) gpu.Texture {
	return &Texture{
		dev:    d,
		Label:  d.label("cube"),
		Pixels: faces[:],
	}
}

func (d *Device) NewTarget(width, height int32) (gpu.Target, error) {
	t := &Target{
		Texture: Texture{
			dev:   d,
			Label: d.label(fmt.Sprintf("target-%dx%d", width, height)),
		},
		Width:  width,
		Height: height,
	}
	if d.IncompleteTargets {
		return t, gpu.ErrIncompleteTarget
	}
	return t, nil
}

func (d *Device) BindTarget(t gpu.Target) {
	if t == nil {
		d.state.Target = "default"
	} else {
		d.state.Target = t.(*Target).Label
	}
	d.logf("target %s", d.state.Target)
}

func (d *Device) Viewport(width, height int32) {
	d.logf("viewport %d %d", width, height)
}

func (d *Device) ClearColor(r, g, b, a float32) {
	d.logf("clearcolor %g %g %g %g", r, g, b, a)
}

func (d *Device) Clear(color, depth bool) {
	switch {
	case color && depth:
		d.logf("clear color depth")
	case color:
		d.logf("clear color")
	case depth:
		d.logf("clear depth")
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (d *Device) SetDepthTest(on bool) {
	d.state.DepthTest = on
	d.logf("depthtest %s", onOff(on))
}

func (d *Device) SetDepthMask(on bool) {
	d.state.DepthMask = on
	d.logf("depthmask %s", onOff(on))
}

func (d *Device) SetBlend(on bool) {
	d.state.Blend = on
	d.logf("blend %s", onOff(on))
}

// Current returns the recorded fixed function state.
func (d *Device) Current() State {
	return d.state
}

type Program struct {
	dev      *Device
	Name     string
	Uniforms map[string]any
}

func (p *Program) Use() {
	p.dev.current = p
	p.dev.logf("use %s", p.Name)
}

func (p *Program) SetMat4(n string, m mgl32.Mat4) { p.Uniforms[n] = m }
func (p *Program) SetVec3(n string, v mgl32.Vec3) { p.Uniforms[n] = v }
func (p *Program) SetFloat(n string, f float32)   { p.Uniforms[n] = f }
func (p *Program) SetInt(n string, i int32)       { p.Uniforms[n] = i }

type Geometry struct {
	dev       *Device
	Label     string
	Primitive gpu.Primitive
	Count     int
	Data      *gpu.GeometryData
}

func (g *Geometry) Draw() {
	d := g.dev
	c := DrawCall{
		Primitive: g.Primitive,
		Count:     g.Count,
		State:     d.state,
		Uniforms:  make(map[string]any),
		Textures:  make(map[uint32]string),
	}
	if d.current != nil {
		c.Program = d.current.Name
		for k, v := range d.current.Uniforms {
			c.Uniforms[k] = v
		}
	}
	for k, v := range d.textures {
		c.Textures[k] = v
	}
	d.Draws = append(d.Draws, c)
	d.logf("draw %s %d", c.Program, c.Count)
}

func (g *Geometry) Delete() {
	delete(g.dev.Live, g.Label)
}

type Texture struct {
	dev    *Device
	Label  string
	Pixels []*image.Pixels
}

func (t *Texture) Bind(unit uint32) {
	t.dev.textures[unit] = t.Label
	t.dev.logf("bind %s %d", t.Label, unit)
}

func (t *Texture) Delete() {
	delete(t.dev.Live, t.Label)
}

type Target struct {
	Texture
	Width  int32
	Height int32
}

func (t *Target) Size() (int32, int32) {
	return t.Width, t.Height
}
