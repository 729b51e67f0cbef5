// SPDX-License-Identifier: GPL-2.0-or-later

package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Animation changes a node once per frame, before the matrices are updated.
type Animation interface {
	Animate(n *Node, dt float32)
}

// Spin turns a node by Rate degrees per second around each axis.
type Spin struct {
	Rate mgl32.Vec3
}

func (s *Spin) Animate(n *Node, dt float32) {
	n.Rotation = n.Rotation.Add(s.Rate.Mul(dt))
}

// Bob moves a node up and down around Base. Frequency is in radians per
// second.
type Bob struct {
	Base      mgl32.Vec3
	Amplitude float32
	Frequency float32

	elapsed float32
}

func (b *Bob) Animate(n *Node, dt float32) {
	b.elapsed += dt
	n.Position = b.Base.Add(mgl32.Vec3{0, math32.Sin(b.elapsed*b.Frequency) * b.Amplitude, 0})
}
