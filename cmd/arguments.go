// SPDX-License-Identifier: GPL-2.0-or-later

package cmd

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Arg is a single argument. The numeric accessors return 0 for text that
// is not a number, the Parse variants report why.
type Arg struct {
	a string
}

func (a Arg) String() string {
	return a.a
}

func (a Arg) Int() int {
	r, _ := a.ParseInt()
	return r
}

func (a Arg) ParseInt() (int, error) {
	r, err := strconv.ParseInt(a.a, 10, 0)
	if err != nil {
		return 0, errors.Wrapf(err, "argument %q", a.a)
	}
	return int(r), nil
}

func (a Arg) Float32() float32 {
	r, _ := a.ParseFloat32()
	return r
}

func (a Arg) ParseFloat32() (float32, error) {
	r, err := strconv.ParseFloat(a.a, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "argument %q", a.a)
	}
	return float32(r), nil
}

type Arguments struct {
	args []Arg
	// the trimmed line
	full string
	// offset of args[1] in full
	rest int
}

// Argv returns argument i or an empty one when there are fewer arguments.
func (c *Arguments) Argv(i int) Arg {
	if i < 0 || i >= len(c.args) {
		return Arg{""}
	}
	return c.args[i]
}

func (c *Arguments) Full() string {
	return c.full
}

func (c *Arguments) Args() []Arg {
	return c.args
}

// ArgumentString is the raw text after the command name. A leading quote
// strips the quotes around the whole text.
func (c *Arguments) ArgumentString() string {
	if len(c.args) < 2 {
		return ""
	}
	r := c.full[c.rest:]
	if len(r) > 1 && r[0] == '"' {
		r = strings.Trim(r, "\"\t\n\v\f\r ")
	}
	return r
}

// Parse splits one line into arguments. Words are separated by blanks,
// double quotes group words, "//" starts a comment and the first line break
// ends the line.
func Parse(s string) (args Arguments) {
	args.full = strings.TrimSpace(s)
	args.args = []Arg{}
	line := args.full
	if i := strings.IndexAny(line, "\r\n"); i >= 0 {
		line = line[:i]
	}
	pos := 0
	for {
		for pos < len(line) && isBlank(line[pos]) {
			pos++
		}
		if pos >= len(line) || strings.HasPrefix(line[pos:], "//") {
			return
		}
		if len(args.args) == 1 {
			args.rest = pos
		}
		start := pos
		if line[pos] == '"' {
			end := strings.IndexByte(line[pos+1:], '"')
			if end < 0 {
				// unterminated, take the rest
				args.args = append(args.args, Arg{line[pos+1:]})
				return
			}
			pos += end + 2
			args.args = append(args.args, Arg{line[start+1 : pos-1]})
			continue
		}
		for pos < len(line) && !isBlank(line[pos]) {
			pos++
		}
		args.args = append(args.args, Arg{line[start:pos]})
	}
}

func isBlank(c byte) bool {
	return c <= ' '
}
