// SPDX-License-Identifier: GPL-2.0-or-later

// Package glh implements gpu.Device on top of OpenGL 4.6 core.
package glh

import (
	"log"
	"runtime"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gopxl/mainthread/v2"
	"github.com/pkg/errors"
)

// resource ties a GL name to its Go owner. Delete frees it right away, the
// cleanup only runs for owners that were dropped without Delete.
type resource struct {
	id      uint32
	cleanup runtime.Cleanup
	deleted bool
}

func (r *resource) track(owner any, free func(uint32)) {
	r.cleanup = runtime.AddCleanup(owner, func(id uint32) {
		mainthread.CallNonBlock(func() {
			free(id)
		})
	}, r.id)
}

func (r *resource) release(free func(uint32)) {
	if r.deleted {
		return
	}
	r.deleted = true
	r.cleanup.Stop()
	free(r.id)
}

type Program struct {
	res      resource
	uniforms map[string]int32
}

func NewProgram(vertex, fragment string) (*Program, error) {
	vert, err := GetShader(vertex, gl.VERTEX_SHADER)
	if err != nil {
		return nil, errors.Wrap(err, "vertex shader")
	}
	defer gl.DeleteShader(vert)
	frag, err := GetShader(fragment, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, errors.Wrap(err, "fragment shader")
	}
	defer gl.DeleteShader(frag)

	p := &Program{
		res:      resource{id: gl.CreateProgram()},
		uniforms: make(map[string]int32),
	}
	gl.AttachShader(p.res.id, vert)
	gl.AttachShader(p.res.id, frag)
	gl.LinkProgram(p.res.id)

	var status int32
	gl.GetProgramiv(p.res.id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(p.res.id, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(p.res.id, logLength, nil, gl.Str(log))
		gl.DeleteProgram(p.res.id)
		return nil, errors.Errorf("Failed to link program: %v", strings.TrimRight(log, "\x00"))
	}
	p.res.track(p, deleteProgram)
	return p, nil
}

func deleteProgram(p uint32) {
	gl.DeleteProgram(p)
}

func (p *Program) Delete() {
	p.res.release(deleteProgram)
}

func (p *Program) Use() {
	gl.UseProgram(p.res.id)
}

// uniform caches the lookups, a missing uniform is remembered as -1 which GL
// silently ignores.
func (p *Program) uniform(n string) int32 {
	if l, ok := p.uniforms[n]; ok {
		return l
	}
	l := gl.GetUniformLocation(p.res.id, gl.Str(n+"\x00"))
	p.uniforms[n] = l
	return l
}

func (p *Program) SetMat4(n string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.uniform(n), 1, false, &m[0])
}

func (p *Program) SetVec3(n string, v mgl32.Vec3) {
	gl.Uniform3f(p.uniform(n), v[0], v[1], v[2])
}

func (p *Program) SetFloat(n string, f float32) {
	gl.Uniform1f(p.uniform(n), f)
}

func (p *Program) SetInt(n string, i int32) {
	gl.Uniform1i(p.uniform(n), i)
}

type Buffer struct {
	res    resource
	target uint32
}

func NewBuffer(target uint32) *Buffer {
	b := &Buffer{
		target: target,
	}
	gl.GenBuffers(1, &b.res.id)
	b.res.track(b, deleteBuffer)
	return b
}

func deleteBuffer(buf uint32) {
	gl.DeleteBuffers(1, &buf)
}

func (b *Buffer) Delete() {
	b.res.release(deleteBuffer)
}

func (b *Buffer) Bind() {
	gl.BindBuffer(b.target, b.res.id)
}

// SetData sets the data for this buffer. It needs to be bound first.
func (b *Buffer) SetData(size int, data unsafe.Pointer) {
	gl.BufferData(b.target, size, data, gl.STATIC_DRAW)
}

type VertexArray struct {
	res resource
}

func NewVertexArray() *VertexArray {
	va := &VertexArray{}
	gl.GenVertexArrays(1, &va.res.id)
	va.res.track(va, deleteVertexArray)
	return va
}

func deleteVertexArray(va uint32) {
	gl.DeleteVertexArrays(1, &va)
}

func (va *VertexArray) Delete() {
	va.res.release(deleteVertexArray)
}

func (va *VertexArray) Bind() {
	gl.BindVertexArray(va.res.id)
}

func GetShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(src)
	defer free()
	length := int32(len(src))
	gl.ShaderSource(shader, 1, csource, &length)
	gl.CompileShader(shader)
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, errors.Errorf("Failed to compile shader: %v", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

func checkError(what string) {
	if e := gl.GetError(); e != gl.NO_ERROR {
		log.Printf("GL error 0x%x after %s", e, what)
	}
}
