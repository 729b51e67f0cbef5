// SPDX-License-Identifier: GPL-2.0-or-later

package viewer

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"goscene/cvars"
	"goscene/scene"
)

func key(code sdl.Scancode, pressed bool) *sdl.KeyboardEvent {
	e := &sdl.KeyboardEvent{Type: sdl.KEYUP, State: sdl.RELEASED, Keysym: sdl.Keysym{Scancode: code}}
	if pressed {
		e.Type = sdl.KEYDOWN
		e.State = sdl.PRESSED
	}
	return e
}

func newViewer(t *testing.T) *Viewer {
	t.Helper()
	v, err := New()
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestKeys(t *testing.T) {
	v := newViewer(t)
	v.handle(key(sdl.SCANCODE_W, true))
	v.handle(key(sdl.SCANCODE_LSHIFT, true))
	v.handle(key(sdl.SCANCODE_F, true))
	v.runCommands()
	in := v.input.Snapshot()
	if !in.Forward || !in.Fast || in.CycleEffect != 1 {
		t.Errorf("input = %+v", in)
	}

	v.handle(key(sdl.SCANCODE_W, false))
	v.handle(key(sdl.SCANCODE_F, false))
	v.runCommands()
	in = v.input.Snapshot()
	if in.Forward || !in.Fast || in.CycleEffect != 0 {
		t.Errorf("input after release = %+v", in)
	}
	if v.Quit() {
		t.Errorf("quit without escape")
	}
	v.handle(key(sdl.SCANCODE_ESCAPE, true))
	v.runCommands()
	if !v.Quit() {
		t.Errorf("escape did not quit")
	}
}

func TestPointer(t *testing.T) {
	v := newViewer(t)
	v.handle(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT, State: sdl.PRESSED, X: 10, Y: 20})
	v.handle(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_RIGHT, State: sdl.PRESSED, X: 0, Y: 0})
	v.handle(&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 12, Y: 18})
	v.handle(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_LEFT, State: sdl.RELEASED, X: 12, Y: 18})
	want := []scene.PointerEvent{
		{Kind: scene.PointerButton, X: 10, Y: 20, Pressed: true},
		{Kind: scene.PointerMove, X: 12, Y: 18},
		{Kind: scene.PointerButton, X: 12, Y: 18},
	}
	got := v.input.Snapshot().Pointer
	if len(got) != len(want) {
		t.Fatalf("pointer events %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestWindowEvents(t *testing.T) {
	v := newViewer(t)
	v.handle(&sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_SIZE_CHANGED, Data1: 640, Data2: 480})
	if !v.resize {
		t.Errorf("size change not noted")
	}
	v.handle(&sdl.QuitEvent{Type: sdl.QUIT})
	if !v.Quit() {
		t.Errorf("quit event ignored")
	}
}

func TestCommands(t *testing.T) {
	v := newViewer(t)
	defer cvars.CameraSpeed.Reset()
	v.Exec("cam_speed 7; set cam_fast_scale 3")
	v.Exec("bind q +forward")
	v.Exec("echo hello")
	v.runCommands()
	if cvars.CameraSpeed.Value() != 7 || cvars.CameraFastScale.Value() != 3 {
		t.Errorf("cvars = %v %v", cvars.CameraSpeed, cvars.CameraFastScale)
	}
	cvars.CameraFastScale.Reset()
	v.handle(key(sdl.SCANCODE_Q, true))
	v.runCommands()
	if !v.input.Snapshot().Forward {
		t.Errorf("bound key did not move")
	}
}
