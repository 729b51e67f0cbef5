// SPDX-License-Identifier: GPL-2.0-or-later

package cvar

import (
	"fmt"
	"strings"
	"testing"

	"goscene/cmd"
	"goscene/conlog"
)

func TestRegister(t *testing.T) {
	cv, err := Register("test_register", "2.5", ARCHIVE)
	if err != nil {
		t.Fatal(err)
	}
	if cv.Value() != 2.5 || cv.String() != "2.5" || !cv.Archive() {
		t.Errorf("cvar = %q %v archive %v", cv.String(), cv.Value(), cv.Archive())
	}
	if _, err := Register("test_register", "1", NONE); err == nil {
		t.Errorf("second Register succeeded")
	}
	if got, ok := Get("test_register"); !ok || got != cv {
		t.Errorf("Get = %v %v", got, ok)
	}
	if got, err := GetByID(cv.ID()); err != nil || got != cv {
		t.Errorf("GetByID = %v %v", got, err)
	}
	if _, err := GetByID(-1); err == nil {
		t.Errorf("GetByID(-1) succeeded")
	}
}

func TestValues(t *testing.T) {
	cv := MustRegister("test_values", "0", NONE)
	for _, tc := range []struct {
		in   float32
		want string
	}{
		{3, "3"},
		{0.25, "0.25"},
		{-1, "-1"},
	} {
		cv.SetValue(tc.in)
		if cv.String() != tc.want || cv.Value() != tc.in {
			t.Errorf("SetValue(%v) = %q", tc.in, cv.String())
		}
	}
	cv.SetByString("fast")
	if cv.Value() != 0 || cv.Bool() != true {
		t.Errorf("text cvar = %v %v", cv.Value(), cv.Bool())
	}
	cv.Toggle()
	if cv.String() != "1" {
		t.Errorf("Toggle = %q", cv.String())
	}
	cv.Toggle()
	if cv.Bool() {
		t.Errorf("Toggle did not switch off")
	}
	cv.SetValue(7)
	cv.Reset()
	if cv.String() != "0" {
		t.Errorf("Reset = %q", cv.String())
	}
}

func TestReadOnly(t *testing.T) {
	cv := MustRegister("test_rom", "1", ROM)
	cv.SetByString("2")
	if cv.String() != "1" {
		t.Errorf("read only cvar changed to %q", cv.String())
	}
}

func TestCallback(t *testing.T) {
	cv := MustRegister("test_callback", "1", NONE)
	var seen []float32
	cv.SetCallback(func(c *Cvar) { seen = append(seen, c.Value()) })
	cv.SetValue(2)
	cv.Reset()
	if len(seen) != 2 || seen[0] != 2 || seen[1] != 1 {
		t.Errorf("callback saw %v", seen)
	}
}

func run(t *testing.T, c *cmd.Commands, line string) {
	t.Helper()
	a := cmd.Parse(line)
	ok, err := c.Execute(a)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		if ok, _ := Execute(a); !ok {
			t.Fatalf("%q not handled", line)
		}
	}
}

func TestCommands(t *testing.T) {
	var out []string
	conlog.SetPrintf(func(f string, v ...interface{}) {
		out = append(out, fmt.Sprintf(f, v...))
	})
	defer conlog.SetPrintf(nil)

	c := cmd.New()
	if err := AddCommands(c); err != nil {
		t.Fatal(err)
	}
	cv := MustRegister("test_cmd", "1", ARCHIVE)

	run(t, c, "set test_cmd 4")
	if cv.Value() != 4 {
		t.Errorf("set: %v", cv.Value())
	}
	run(t, c, "inc test_cmd")
	run(t, c, "inc test_cmd 0.5")
	if cv.Value() != 5.5 {
		t.Errorf("inc: %v", cv.Value())
	}
	run(t, c, "cycle test_cmd a b c")
	if cv.String() != "a" {
		t.Errorf("cycle from unknown value: %q", cv.String())
	}
	run(t, c, "cycle test_cmd a b c")
	run(t, c, "cycle test_cmd a b c")
	run(t, c, "cycle test_cmd a b c")
	if cv.String() != "a" {
		t.Errorf("cycle did not wrap: %q", cv.String())
	}
	run(t, c, "toggle test_cmd")
	if cv.String() != "1" {
		t.Errorf("toggle: %q", cv.String())
	}
	run(t, c, "test_cmd 9")
	if cv.Value() != 9 {
		t.Errorf("assignment by name: %v", cv.Value())
	}
	run(t, c, "reset test_cmd")
	if cv.String() != "1" {
		t.Errorf("reset: %q", cv.String())
	}

	run(t, c, "set test_user hello")
	u, ok := Get("test_user")
	if !ok || !u.UserDefined() || u.String() != "hello" {
		t.Errorf("set did not create test_user")
	}
	run(t, c, "set toggle 1")
	if _, ok := Get("toggle"); ok {
		t.Errorf("set shadowed a command")
	}

	out = nil
	run(t, c, "cvarlist test_cmd")
	if len(out) != 2 || !strings.Contains(out[0], "* test_cmd \"1\"") {
		t.Errorf("cvarlist printed %q", out)
	}
	out = nil
	run(t, c, "test_cmd")
	if len(out) != 1 || out[0] != "\"test_cmd\" is \"1\"\n" {
		t.Errorf("query printed %q", out)
	}
}
