// SPDX-License-Identifier: GPL-2.0-or-later

package input

import (
	"testing"

	"goscene/cmd"
	"goscene/scene"
)

func setup(t *testing.T) (*State, func(string)) {
	t.Helper()
	s := New()
	c := cmd.New()
	if err := s.Commands(c); err != nil {
		t.Fatal(err)
	}
	run := func(line string) {
		t.Helper()
		if line == "" {
			return
		}
		ok, err := c.Execute(cmd.Parse(line))
		if err != nil || !ok {
			t.Fatalf("%q: %v %v", line, ok, err)
		}
	}
	return s, run
}

func TestKeyEvent(t *testing.T) {
	s := New()
	for _, tc := range []struct {
		key          string
		down, repeat bool
		want         string
	}{
		{"W", true, false, "+forward w"},
		{"w", false, false, "-forward w"},
		{"Left Shift", true, false, `+speed "left shift"`},
		{"f", true, false, "effect"},
		{"f", true, true, ""},
		{"f", false, false, ""},
		{"q", true, false, ""},
	} {
		if got := s.KeyEvent(tc.key, tc.down, tc.repeat); got != tc.want {
			t.Errorf("KeyEvent(%q, %v, %v) = %q, want %q", tc.key, tc.down, tc.repeat, got, tc.want)
		}
	}
}

func TestButtons(t *testing.T) {
	s, run := setup(t)
	run(s.KeyEvent("w", true, false))
	run(s.KeyEvent("left shift", true, false))
	in := s.Snapshot()
	if !in.Forward || !in.Fast || in.Back || in.Left || in.Right {
		t.Errorf("snapshot = %+v", in)
	}
	// still held in the next frame
	if in := s.Snapshot(); !in.Forward {
		t.Errorf("forward released without a key up")
	}
	run(s.KeyEvent("w", false, false))
	if in := s.Snapshot(); in.Forward {
		t.Errorf("forward still down")
	}
}

func TestTwoKeys(t *testing.T) {
	s, run := setup(t)
	run("bind up +forward")
	run(s.KeyEvent("w", true, false))
	run(s.KeyEvent("up", true, false))
	run(s.KeyEvent("w", true, true))
	run(s.KeyEvent("w", false, false))
	if !s.Forward.Down() {
		t.Errorf("second key released the button")
	}
	run(s.KeyEvent("up", false, false))
	if s.Forward.Down() {
		t.Errorf("button still down")
	}
	run("+back")
	run("-back")
	if s.Back.Down() {
		t.Errorf("typed -back did not release")
	}
}

func TestEffectOncePerPress(t *testing.T) {
	s, run := setup(t)
	run(s.KeyEvent("f", true, false))
	run(s.KeyEvent("f", true, true))
	if in := s.Snapshot(); in.CycleEffect != 1 {
		t.Errorf("effect presses = %d, want 1", in.CycleEffect)
	}
	if in := s.Snapshot(); in.CycleEffect != 0 {
		t.Errorf("effect press seen twice")
	}
}

func TestEffectPressesBetweenFrames(t *testing.T) {
	s, run := setup(t)
	for i := 0; i < 3; i++ {
		run(s.KeyEvent("f", true, false))
		run(s.KeyEvent("f", false, false))
	}
	if in := s.Snapshot(); in.CycleEffect != 3 {
		t.Errorf("effect presses = %d, want 3", in.CycleEffect)
	}
}

func TestBindCommands(t *testing.T) {
	s, run := setup(t)
	run("bind g cam_speed 10")
	if got := s.Binding("G"); got != "cam_speed 10" {
		t.Errorf("Binding(G) = %q", got)
	}
	run("unbind w")
	if got := s.KeyEvent("w", true, false); got != "" {
		t.Errorf("unbound key runs %q", got)
	}
	run("bind w")
	run("bindlist")
}

func TestPointer(t *testing.T) {
	s := New()
	s.Pointer(scene.PointerEvent{Kind: scene.PointerButton, X: 1, Y: 2, Pressed: true})
	s.Pointer(scene.PointerEvent{Kind: scene.PointerMove, X: 3, Y: 4})
	in := s.Snapshot()
	if len(in.Pointer) != 2 || in.Pointer[1].X != 3 {
		t.Errorf("pointer events = %+v", in.Pointer)
	}
	if in := s.Snapshot(); len(in.Pointer) != 0 {
		t.Errorf("pointer events repeated")
	}
}
