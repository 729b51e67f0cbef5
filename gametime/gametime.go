// SPDX-License-Identifier: GPL-2.0-or-later

// Package gametime is the frame clock of the viewer.
package gametime

import (
	"time"

	"goscene/cvars"
)

var (
	startTime = time.Now()
)

type GameTime struct {
	time       float64
	oldTime    float64
	frameTime  float64
	frameCount int

	// now is the time since start, replaced in tests
	now func() float64
}

func (h *GameTime) Reset() {
	h.frameTime = 0.1
}

func (h *GameTime) Time() float64      { return h.time }
func (h *GameTime) OldTime() float64   { return h.oldTime }
func (h *GameTime) FrameTime() float64 { return h.frameTime }
func (h *GameTime) FrameCount() int    { return h.frameCount }
func (h *GameTime) FrameIncrease()     { h.frameCount++ }

func (h *GameTime) since() float64 {
	if h.now != nil {
		return h.now()
	}
	return time.Since(startTime).Seconds()
}

// UpdateTime advances the clock. It returns false if the frame would exceed
// host_maxfps, the caller should then skip the frame. The frame time is
// scaled by host_timescale and otherwise clamped to [1ms, 100ms] so a stall
// does not throw the camera far away.
func (h *GameTime) UpdateTime() bool {
	h.time = h.since()
	maxFPS := max(10, min(float64(cvars.HostMaxFps.Value()), 1000))
	if h.time-h.oldTime < 1/maxFPS {
		return false
	}
	h.frameTime = h.time - h.oldTime
	h.oldTime = h.time

	if cvars.HostTimeScale.Value() > 0 {
		h.frameTime *= float64(cvars.HostTimeScale.Value())
	} else {
		h.frameTime = max(0.001, min(h.frameTime, 0.1))
	}
	return true
}
