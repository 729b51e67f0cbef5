// SPDX-License-Identifier: GPL-2.0-or-later

package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"goscene/camera"
)

// Component is attached to a node and released with it.
type Component interface {
	Release()
}

// Drawable components issue their own draw calls.
type Drawable interface {
	Component
	Opacity() float32
	Draw(rc *RenderContext, n *Node)
}

type Pass int

const (
	Opaque Pass = iota
	Blended
)

func (p Pass) String() string {
	if p == Opaque {
		return "opaque"
	}
	return "blended"
}

// OpaqueThreshold is the lowest opacity drawn in the opaque pass.
const OpaqueThreshold = 0.9

func PassOf(opacity float32) Pass {
	if opacity >= OpaqueThreshold {
		return Opaque
	}
	return Blended
}

// RenderContext is what drawables need to know about the current frame.
type RenderContext struct {
	Camera     *camera.Camera
	Projection mgl32.Mat4
	View       mgl32.Mat4
	Eye        mgl32.Vec3

	LightPosition mgl32.Vec3
	LightColor    mgl32.Vec3
}

var (
	defaultLightPosition = mgl32.Vec3{5, 50, 5}
	defaultLightColor    = mgl32.Vec3{1, 1, 0.9}
)

func newRenderContext(c *camera.Camera) *RenderContext {
	return &RenderContext{
		Camera:        c,
		Projection:    c.Projection(),
		View:          c.View(),
		Eye:           c.Location(),
		LightPosition: defaultLightPosition,
		LightColor:    defaultLightColor,
	}
}
