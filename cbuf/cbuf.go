// SPDX-License-Identifier: GPL-2.0-or-later

// Package cbuf queues command text and runs it line by line. Lines are
// separated by newlines or by semicolons outside of quotes. A "wait" line
// defers the rest of the buffer to the next Execute call.
package cbuf

import (
	"log"
	"strings"

	"goscene/cmd"
	"goscene/conlog"
)

// Efunc tries to handle one parsed line and reports whether it did.
type Efunc func(*CommandBuffer, cmd.Arguments) (bool, error)

type CommandBuffer struct {
	buf string
	// set by a wait line, causing the following commands to be executed
	// one frame later
	wait      bool
	executors []Efunc
}

// SetCommandExecutors sets the handlers, tried in order for every line.
func (c *CommandBuffer) SetCommandExecutors(e []Efunc) {
	c.executors = e
}

func (c *CommandBuffer) AddText(text string) {
	c.buf = c.buf + text
}

func (c *CommandBuffer) InsertText(text string) {
	c.buf = text + "\n" + c.buf
}

// Empty reports whether all text has been executed.
func (c *CommandBuffer) Empty() bool {
	return len(c.buf) == 0
}

// Execute runs queued lines until the buffer is empty or a wait line is
// reached. The first failing handler stops the run, the rest of the buffer
// stays queued.
func (c *CommandBuffer) Execute() error {
	for len(c.buf) != 0 {
		i := 0
		quote := false
	LineLoop:
		for i = 0; i < len(c.buf); i++ {
			switch c.buf[i] {
			case '"':
				quote = !quote
				continue LineLoop
			case ';':
				if quote {
					continue LineLoop
				}
				break LineLoop
			case '\n':
				break LineLoop
			}
		}
		// do not put ';' or '\n' in line
		line := c.buf[:i]
		// but remove this char as well
		if i < len(c.buf) {
			i++
		}
		c.buf = c.buf[i:]
		if err := c.execute(line); err != nil {
			return err
		}
		if c.wait {
			// wait for the next frame to continue executing
			c.wait = false
			return nil
		}
	}
	return nil
}

func (c *CommandBuffer) execute(line string) error {
	a := cmd.Parse(line)
	args := a.Args()
	if len(args) == 0 {
		return nil // no tokens
	}
	name := args[0].String()
	if strings.EqualFold(name, "wait") {
		c.wait = true
		return nil
	}
	for _, e := range c.executors {
		if ok, err := e(c, a); err != nil {
			return err
		} else if ok {
			return nil
		}
	}
	log.Printf("Unknown command \"%s\"", name)
	conlog.Printf("Unknown command \"%s\"\n", name)
	return nil
}
