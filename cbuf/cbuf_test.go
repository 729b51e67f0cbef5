// SPDX-License-Identifier: GPL-2.0-or-later

package cbuf

import (
	"testing"

	"github.com/pkg/errors"

	"goscene/cmd"
)

func TestWait(t *testing.T) {
	c := CommandBuffer{}
	runCount := 0
	c.SetCommandExecutors([]Efunc{
		func(cb *CommandBuffer, a cmd.Arguments) (bool, error) {
			runCount++
			return true, nil
		}})
	c.AddText("wait\n")
	c.AddText("test\n")
	c.AddText("test\n")
	c.AddText("wait\n")
	c.AddText("test\n")
	c.Execute()
	if runCount != 0 {
		t.Errorf("runCount=%v, want %v", runCount, 0)
	}
	c.Execute()
	if runCount != 2 {
		t.Errorf("runCount=%v, want %v", runCount, 2)
	}
	c.Execute()
	if runCount != 3 {
		t.Errorf("runCount=%v, want %v", runCount, 3)
	}
	if !c.Empty() {
		t.Errorf("buffer not empty")
	}
}

func TestLines(t *testing.T) {
	var lines []string
	c := CommandBuffer{}
	c.SetCommandExecutors([]Efunc{
		func(cb *CommandBuffer, a cmd.Arguments) (bool, error) {
			if a.Argv(0).String() != "echo" {
				return false, nil
			}
			lines = append(lines, a.Argv(1).String())
			return true, nil
		},
		func(cb *CommandBuffer, a cmd.Arguments) (bool, error) {
			if a.Argv(0).String() != "twice" {
				return false, nil
			}
			cb.InsertText("echo " + a.Argv(1).String() + ";echo " + a.Argv(1).String())
			return true, nil
		},
	})
	c.AddText(`echo a; echo "b;c"` + "\n\n" + `unknown x;twice d;echo e`)
	if err := c.Execute(); err != nil {
		t.Fatal(err)
	}
	want := []string{"a", "b;c", "d", "d", "e"}
	if len(lines) != len(want) {
		t.Fatalf("ran %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("ran %q, want %q", lines, want)
			break
		}
	}
}

func TestError(t *testing.T) {
	c := CommandBuffer{}
	c.SetCommandExecutors([]Efunc{
		func(cb *CommandBuffer, a cmd.Arguments) (bool, error) {
			return false, errors.New("broken")
		}})
	c.AddText("one\ntwo\n")
	if err := c.Execute(); err == nil {
		t.Errorf("no error")
	}
	if c.Empty() {
		t.Errorf("rest of the buffer dropped")
	}
}
