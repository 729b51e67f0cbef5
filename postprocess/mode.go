// SPDX-License-Identifier: GPL-2.0-or-later

package postprocess

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Mode selects the color transform of the final pass. The value is passed
// unchanged to the shader.
type Mode int32

const (
	Normal Mode = iota
	Sepia
	NightVision
	numModes
)

func (m Mode) String() string {
	switch m {
	case Normal:
		return "Normal"
	case Sepia:
		return "Sepia"
	case NightVision:
		return "Night Vision"
	}
	return "Unknown"
}

// Wrap maps any index to a valid mode, out of range values become Normal.
func Wrap(i int) Mode {
	if i < 0 || i >= int(numModes) {
		return Normal
	}
	return Mode(i)
}

// Next is the mode the cycle key switches to.
func (m Mode) Next() Mode {
	return Wrap(int(m) + 1)
}

var (
	sepiaR = mgl32.Vec3{0.393, 0.769, 0.189}
	sepiaG = mgl32.Vec3{0.349, 0.686, 0.168}
	sepiaB = mgl32.Vec3{0.272, 0.534, 0.131}
	luma   = mgl32.Vec3{0.299, 0.587, 0.114}
)

const nightGain = 1.5

// Apply runs the color transform of m on the CPU. The result is clamped to
// [0,1] like the 8 bit color buffer the shader writes into.
func Apply(m Mode, c mgl32.Vec3) mgl32.Vec3 {
	var r mgl32.Vec3
	switch Wrap(int(m)) {
	case Normal:
		r = c
	case Sepia:
		r = mgl32.Vec3{sepiaR.Dot(c), sepiaG.Dot(c), sepiaB.Dot(c)}
	case NightVision:
		r = mgl32.Vec3{0, luma.Dot(c) * nightGain, 0}
	}
	for i := range r {
		r[i] = math32.Max(0, math32.Min(1, r[i]))
	}
	return r
}
