// SPDX-License-Identifier: GPL-2.0-or-later

package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDefaults(t *testing.T) {
	c := New(16.0 / 9)
	if c.FOV() != 60 || c.Near() != 0.1 || c.Far() != 1000 {
		t.Errorf("defaults = %v %v %v", c.FOV(), c.Near(), c.Far())
	}
	if c.Location() != (mgl32.Vec3{}) || c.Target() != (mgl32.Vec3{0, 0, -1}) {
		t.Errorf("pose = %v -> %v", c.Location(), c.Target())
	}
	want := mgl32.Perspective(mgl32.DegToRad(60), 16.0/9, 0.1, 1000)
	if !c.Projection().ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("Projection() = %v, want %v", c.Projection(), want)
	}
}

func TestMove(t *testing.T) {
	c := New(1)
	c.SetLocation(mgl32.Vec3{1, 1, 1})
	c.SetTarget(mgl32.Vec3{1, 1, 0})
	v := mgl32.Vec3{2, -3, 0.5}
	c.Move(v)
	if got, want := c.Location(), (mgl32.Vec3{3, -2, 1.5}); got != want {
		t.Errorf("Location() = %v, want %v", got, want)
	}
	if got, want := c.Target(), (mgl32.Vec3{3, -2, 0.5}); got != want {
		t.Errorf("Target() = %v, want %v", got, want)
	}
}

func TestRotateIdentity(t *testing.T) {
	c := New(1)
	c.SetLocation(mgl32.Vec3{1, 2, 3})
	c.SetTarget(mgl32.Vec3{4, 5, 6})
	c.Rotate(mgl32.Ident4())
	if got, want := c.Target(), (mgl32.Vec3{4, 5, 6}); got != want {
		t.Errorf("Target() = %v, want %v", got, want)
	}
}

func TestRotateAroundLocation(t *testing.T) {
	c := New(1)
	c.SetLocation(mgl32.Vec3{5, 0, 5})
	c.SetTarget(mgl32.Vec3{5, 0, 4})
	c.Rotate(mgl32.HomogRotate3DY(mgl32.DegToRad(90)))
	if got, want := c.Target(), (mgl32.Vec3{4, 0, 5}); !got.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("Target() = %v, want %v", got, want)
	}
	if got := c.Location(); got != (mgl32.Vec3{5, 0, 5}) {
		t.Errorf("Location() moved to %v", got)
	}
}

func TestProjectionRecomputed(t *testing.T) {
	c := New(1)
	c.SetFOV(90)
	c.SetNear(1)
	c.SetFar(10)
	c.SetRatio(2)
	want := mgl32.Perspective(mgl32.DegToRad(90), 2, 1, 10)
	if !c.Projection().ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("Projection() = %v, want %v", c.Projection(), want)
	}
}

func TestDirections(t *testing.T) {
	c := New(1)
	if got := c.Front(); got != (mgl32.Vec3{0, 0, -1}) {
		t.Errorf("Front() = %v", got)
	}
	if got := c.Right(); !got.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5) {
		t.Errorf("Right() = %v", got)
	}
	c.SetTarget(mgl32.Vec3{0, 5, 0})
	if got := c.Right(); got != (mgl32.Vec3{1, 0, 0}) {
		t.Errorf("Right() looking up = %v", got)
	}
}

func TestView(t *testing.T) {
	c := New(1)
	c.SetLocation(mgl32.Vec3{0, 0, 5})
	c.SetTarget(mgl32.Vec3{0, 0, 0})
	// the origin ends up 5 units in front of the eye
	p := c.View().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if !p.ApproxEqualThreshold(mgl32.Vec4{0, 0, -5, 1}, 1e-5) {
		t.Errorf("View() * origin = %v", p)
	}
}
