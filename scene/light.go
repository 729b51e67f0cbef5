// SPDX-License-Identifier: GPL-2.0-or-later

package scene

import "github.com/go-gl/mathgl/mgl32"

// Light is a point light placed by its node. Meshes are lit by the first
// light of the tree.
type Light struct {
	Color mgl32.Vec3
}

func NewLight(color mgl32.Vec3) *Light {
	return &Light{Color: color}
}

func (l *Light) Release() {}
