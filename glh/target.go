// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"github.com/go-gl/gl/v4.6-core/gl"

	"goscene/gpu"
)

// Target is a framebuffer with a sampleable color texture and a
// depth-stencil renderbuffer.
type Target struct {
	fbo    resource
	rbo    resource
	color  *texture
	width  int32
	height int32
}

func deleteFramebuffer(f uint32) {
	gl.DeleteFramebuffers(1, &f)
}

func deleteRenderbuffer(r uint32) {
	gl.DeleteRenderbuffers(1, &r)
}

func newTarget(width, height int32) (*Target, error) {
	t := &Target{
		color:  newTexture(gl.TEXTURE_2D),
		width:  width,
		height: height,
	}
	gl.GenFramebuffers(1, &t.fbo.id)
	t.fbo.track(t, deleteFramebuffer)
	gl.GenRenderbuffers(1, &t.rbo.id)
	t.rbo.track(t, deleteRenderbuffer)

	gl.BindTexture(gl.TEXTURE_2D, t.color.res.id)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB, width, height, 0, gl.RGB, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.BindRenderbuffer(gl.RENDERBUFFER, t.rbo.id)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH24_STENCIL8, width, height)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)

	gl.BindFramebuffer(gl.FRAMEBUFFER, t.fbo.id)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, t.color.res.id, 0)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_STENCIL_ATTACHMENT, gl.RENDERBUFFER, t.rbo.id)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	if status != gl.FRAMEBUFFER_COMPLETE {
		return t, gpu.ErrIncompleteTarget
	}
	return t, nil
}

func (t *Target) Size() (int32, int32) {
	return t.width, t.height
}

// Bind binds the color buffer for sampling.
func (t *Target) Bind(unit uint32) {
	t.color.Bind(unit)
}

func (t *Target) Delete() {
	t.fbo.release(deleteFramebuffer)
	t.rbo.release(deleteRenderbuffer)
	t.color.Delete()
}
