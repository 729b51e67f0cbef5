// SPDX-License-Identifier: GPL-2.0-or-later

// Package camera holds the view and projection state of the viewer.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultFOV  = 60
	DefaultNear = 0.1
	DefaultFar  = 1000
)

// Up is the fixed world up direction.
var Up = mgl32.Vec3{0, 1, 0}

// Camera looks from a location at a target point. The projection matrix is
// kept up to date by every setter touching its parameters.
type Camera struct {
	fov   float32 // vertical, degrees
	near  float32
	far   float32
	ratio float32

	location mgl32.Vec3
	target   mgl32.Vec3

	projection mgl32.Mat4
}

func New(ratio float32) *Camera {
	c := &Camera{
		fov:    DefaultFOV,
		near:   DefaultNear,
		far:    DefaultFar,
		ratio:  ratio,
		target: mgl32.Vec3{0, 0, -1},
	}
	c.calculateProjection()
	return c
}

func (c *Camera) calculateProjection() {
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.fov), c.ratio, c.near, c.far)
}

func (c *Camera) FOV() float32   { return c.fov }
func (c *Camera) Near() float32  { return c.near }
func (c *Camera) Far() float32   { return c.far }
func (c *Camera) Ratio() float32 { return c.ratio }

func (c *Camera) SetFOV(fov float32) {
	c.fov = fov
	c.calculateProjection()
}

func (c *Camera) SetNear(near float32) {
	c.near = near
	c.calculateProjection()
}

func (c *Camera) SetFar(far float32) {
	c.far = far
	c.calculateProjection()
}

func (c *Camera) SetRatio(ratio float32) {
	c.ratio = ratio
	c.calculateProjection()
}

func (c *Camera) Location() mgl32.Vec3 { return c.location }
func (c *Camera) Target() mgl32.Vec3   { return c.target }

func (c *Camera) SetLocation(l mgl32.Vec3) { c.location = l }
func (c *Camera) SetTarget(t mgl32.Vec3)   { c.target = t }

func (c *Camera) Projection() mgl32.Mat4 {
	return c.projection
}

func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.location, c.target, Up)
}

// Move translates location and target by t, the view direction is kept.
func (c *Camera) Move(t mgl32.Vec3) {
	c.location = c.location.Add(t)
	c.target = c.target.Add(t)
}

// Rotate turns the target around the location.
func (c *Camera) Rotate(r mgl32.Mat4) {
	d := c.target.Sub(c.location)
	c.target = c.location.Add(r.Mul4x1(d.Vec4(0)).Vec3())
}

// Front is the normalized view direction.
func (c *Camera) Front() mgl32.Vec3 {
	return normalize(c.target.Sub(c.location))
}

// Right is perpendicular to the view direction and world up. Looking
// straight up or down it falls back to +X.
func (c *Camera) Right() mgl32.Vec3 {
	r := c.Front().Cross(Up)
	if r.Len() < 1e-6 {
		return mgl32.Vec3{1, 0, 0}
	}
	return normalize(r)
}

func normalize(v mgl32.Vec3) mgl32.Vec3 {
	l := math32.Sqrt(v.Dot(v))
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}
