// SPDX-License-Identifier: GPL-2.0-or-later

// Package input tracks the viewer buttons. Keys are bound to commands,
// "+name" commands press a button and are released by the matching "-name"
// when the key goes up. Other bound commands run once per key press.
package input

import (
	"sort"
	"strings"

	"goscene/cmd"
	"goscene/conlog"
	"goscene/scene"
)

type button struct {
	// keys holding it down, can handle 2 keys with the same action
	holdingDown [2]string
	down        bool
}

func (b *button) Down() bool {
	return b.down
}

func (b *button) upKey(k string) {
	if b.holdingDown[0] == k {
		b.holdingDown[0] = ""
	} else if b.holdingDown[1] == k {
		b.holdingDown[1] = ""
	} else {
		return
	}
	if b.holdingDown[0] != "" || b.holdingDown[1] != "" {
		// some other key is still holding it down
		return
	}
	b.down = false
}

func (b *button) upCmd() cmd.Func {
	return func(a cmd.Arguments) error {
		k := a.Args()[1:]
		if len(k) == 0 {
			// typed manually
			b.holdingDown[0] = ""
			b.holdingDown[1] = ""
			b.down = false
		} else {
			b.upKey(k[0].String())
		}
		return nil
	}
}

func (b *button) downKey(k string) {
	if b.holdingDown[0] == k || b.holdingDown[1] == k {
		// key repeat
		return
	}
	if b.holdingDown[0] == "" {
		b.holdingDown[0] = k
	} else if b.holdingDown[1] == "" {
		b.holdingDown[1] = k
	} else {
		return
	}
	b.down = true
}

func (b *button) downCmd() cmd.Func {
	return func(a cmd.Arguments) error {
		k := a.Args()[1:]
		if len(k) == 0 {
			// typed manually
			b.downKey("console")
		} else {
			b.downKey(k[0].String())
		}
		return nil
	}
}

// State holds the buttons, the key bindings and the pointer events of the
// current frame.
type State struct {
	Forward   button
	Back      button
	MoveLeft  button
	MoveRight button
	Speed     button

	cycleEffect int
	pointer     []scene.PointerEvent

	bindings map[string]string
}

// DefaultBindings are installed by New.
var DefaultBindings = map[string]string{
	"w":          "+forward",
	"s":          "+back",
	"a":          "+moveleft",
	"d":          "+moveright",
	"left shift": "+speed",
	"f":          "effect",
	"escape":     "quit",
}

func New() *State {
	s := &State{bindings: make(map[string]string)}
	for k, v := range DefaultBindings {
		s.bindings[k] = v
	}
	return s
}

// Commands registers the button, effect and binding commands with c.
func (s *State) Commands(c *cmd.Commands) error {
	for _, b := range []struct {
		name string
		b    *button
	}{
		{"forward", &s.Forward},
		{"back", &s.Back},
		{"moveleft", &s.MoveLeft},
		{"moveright", &s.MoveRight},
		{"speed", &s.Speed},
	} {
		if err := c.Add("+"+b.name, b.b.downCmd()); err != nil {
			return err
		}
		if err := c.Add("-"+b.name, b.b.upCmd()); err != nil {
			return err
		}
	}
	if err := c.Add("effect", s.effectCmd); err != nil {
		return err
	}
	if err := c.Add("bind", s.bindCmd); err != nil {
		return err
	}
	if err := c.Add("unbind", s.unbindCmd); err != nil {
		return err
	}
	return c.Add("bindlist", s.bindListCmd)
}

func (s *State) effectCmd(_ cmd.Arguments) error {
	s.cycleEffect++
	return nil
}

// Bind sets the command of a key, an empty command removes the binding.
func (s *State) Bind(key, command string) {
	key = strings.ToLower(key)
	if command == "" {
		delete(s.bindings, key)
		return
	}
	s.bindings[key] = command
}

func (s *State) Binding(key string) string {
	return s.bindings[strings.ToLower(key)]
}

func (s *State) bindCmd(a cmd.Arguments) error {
	args := a.Args()[1:]
	switch len(args) {
	case 0:
		conlog.Printf("bind <key> [command] : attach a command to a key\n")
	case 1:
		k := args[0].String()
		if b := s.Binding(k); b != "" {
			conlog.Printf("\"%s\" = \"%s\"\n", k, b)
		} else {
			conlog.Printf("\"%s\" is not bound\n", k)
		}
	default:
		parts := make([]string, 0, len(args)-1)
		for _, p := range args[1:] {
			parts = append(parts, p.String())
		}
		s.Bind(args[0].String(), strings.Join(parts, " "))
	}
	return nil
}

func (s *State) unbindCmd(a cmd.Arguments) error {
	args := a.Args()[1:]
	if len(args) != 1 {
		conlog.Printf("unbind <key> : remove commands from a key\n")
		return nil
	}
	s.Bind(args[0].String(), "")
	return nil
}

func (s *State) bindListCmd(_ cmd.Arguments) error {
	keys := make([]string, 0, len(s.bindings))
	for k := range s.bindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		conlog.Printf("\"%s\" \"%s\"\n", k, s.bindings[k])
	}
	return nil
}

// KeyEvent returns the command line a key change runs, or "" if there is
// none. Button commands get the key as argument so two keys can hold the
// same button.
func (s *State) KeyEvent(key string, down, repeat bool) string {
	key = strings.ToLower(key)
	b, ok := s.bindings[key]
	if !ok {
		return ""
	}
	if strings.HasPrefix(b, "+") {
		if down {
			return b + " " + quote(key)
		}
		return "-" + b[1:] + " " + quote(key)
	}
	if !down || repeat {
		return ""
	}
	return b
}

func quote(k string) string {
	if strings.ContainsAny(k, " ;\"") {
		return "\"" + k + "\""
	}
	return k
}

// Pointer queues a pointer event for the next snapshot.
func (s *State) Pointer(e scene.PointerEvent) {
	s.pointer = append(s.pointer, e)
}

// Snapshot returns the input of one frame. Pointer events and the effect
// presses are consumed, held buttons stay down.
func (s *State) Snapshot() *scene.Input {
	in := &scene.Input{
		Forward:     s.Forward.Down(),
		Back:        s.Back.Down(),
		Left:        s.MoveLeft.Down(),
		Right:       s.MoveRight.Down(),
		Fast:        s.Speed.Down(),
		CycleEffect: s.cycleEffect,
		Pointer:     s.pointer,
	}
	s.cycleEffect = 0
	s.pointer = nil
	return in
}
