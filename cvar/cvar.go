// SPDX-License-Identifier: GPL-2.0-or-later

// Package cvar is the registry of named runtime settings. Every setting is
// stored as text, its numeric value is derived from it.
package cvar

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"goscene/cmd"
	"goscene/conlog"
)

var (
	cvarArray  []*Cvar
	cvarByName = make(map[string]*Cvar)
)

type flag uint64

const (
	// cvar flags bitfield
	NONE    flag = 0
	ARCHIVE flag = 1
	ROM     flag = 1 << 6
)

type CallbackFunc func(cv *Cvar)

type Cvar struct {
	archive  bool
	rom      bool
	user     bool
	callback CallbackFunc
	name     string
	// stringValue is the truth, value the derived one
	stringValue  string
	value        float32
	defaultValue string
	id           int
}

func All() []*Cvar {
	return cvarArray
}

func (cv *Cvar) Archive() bool {
	return cv.archive
}

func (cv *Cvar) UserDefined() bool {
	return cv.user
}

// SetCallback installs cb, it runs after every change of the value.
func (cv *Cvar) SetCallback(cb CallbackFunc) {
	cv.callback = cb
}

func (cv *Cvar) SetByString(s string) {
	if cv.rom {
		return
	}
	cv.stringValue = s
	pf, _ := strconv.ParseFloat(cv.stringValue, 32)
	cv.value = float32(pf)
	if cv.callback != nil {
		cv.callback(cv)
	}
}

func (cv *Cvar) Reset() {
	cv.SetByString(cv.defaultValue)
}

func (cv *Cvar) String() string {
	return cv.stringValue
}

func (cv *Cvar) Default() string {
	return cv.defaultValue
}

func (cv *Cvar) ID() int {
	return cv.id
}

func (cv *Cvar) Name() string {
	return cv.name
}

func (cv *Cvar) Value() float32 {
	return cv.value
}

func (cv *Cvar) SetValue(value float32) {
	if float32(int(value)) == value {
		v := strconv.FormatInt(int64(value), 10)
		cv.SetByString(v)
	} else {
		v := strconv.FormatFloat(float64(value), 'f', -1, 32)
		cv.SetByString(v)
	}
}

func (cv *Cvar) Toggle() {
	if cv.String() == "1" {
		cv.SetByString("0")
	} else {
		cv.SetByString("1")
	}
}

func (cv *Cvar) Bool() bool {
	return cv.stringValue != "0" && cv.stringValue != ""
}

func Get(name string) (*Cvar, bool) {
	cv, ok := cvarByName[name]
	return cv, ok
}

func GetByID(id int) (*Cvar, error) {
	if id < 0 || id >= len(cvarArray) {
		return nil, fmt.Errorf("id out of bounds")
	}
	return cvarArray[id], nil
}

func create(name, value string) *Cvar {
	cv := &Cvar{name: name, defaultValue: value}
	cv.SetByString(value)
	pos := len(cvarArray)
	cvarArray = append(cvarArray, cv)
	cvarByName[name] = cv
	cv.id = pos
	return cv
}

func Register(name, value string, flags flag) (*Cvar, error) {
	if _, ok := cvarByName[name]; ok {
		return nil, errors.Errorf("Can't register variable %s, already defined", name)
	}

	cv := create(name, value)

	if flags&ARCHIVE != 0 {
		cv.archive = true
	}
	if flags&ROM != 0 {
		cv.rom = true
	}

	return cv, nil
}

func MustRegister(n, v string, flag flag) *Cvar {
	cv, err := Register(n, v, flag)
	if err != nil {
		log.Panic(n)
	}
	return cv
}

// Set changes the named cvar, creating a user defined one when it does not
// exist yet.
func Set(name, value string) *Cvar {
	if cv, ok := cvarByName[name]; ok {
		cv.SetByString(value)
		return cv
	}
	cv := create(name, value)
	cv.user = true
	return cv
}

// Execute treats a line starting with a cvar name as a query or an
// assignment. It reports false for anything else.
func Execute(a cmd.Arguments) (bool, error) {
	args := a.Args()
	if len(args) == 0 {
		return false, nil
	}
	n := args[0].String()
	cv, ok := Get(n)
	if !ok {
		return false, nil
	}
	if len(args) == 1 {
		conlog.Printf("\"%s\" is \"%s\"\n", cv.Name(), cv.String())
		return true, nil
	}
	cv.SetByString(args[1].String())
	return true, nil
}

// AddCommands registers the cvar commands with c.
func AddCommands(c *cmd.Commands) error {
	for _, e := range []struct {
		name string
		f    cmd.Func
	}{
		{"cvarlist", list},
		{"cycle", cycle},
		{"inc", inc},
		{"reset", reset},
		{"resetall", resetAll},
		{"set", set(c)},
		{"toggle", toggle},
	} {
		if err := c.Add(e.name, e.f); err != nil {
			return err
		}
	}
	return nil
}

func set(c *cmd.Commands) cmd.Func {
	return func(a cmd.Arguments) error {
		args := a.Args()[1:]
		switch {
		case len(args) >= 2:
			if c.Exists(args[0].String()) {
				conlog.Printf("conflict with command\n")
				return nil
			}
			Set(args[0].String(), args[1].String())
		default:
			conlog.Printf("set <cvar> <value>\n")
		}
		return nil
	}
}

func toggle(a cmd.Arguments) error {
	args := a.Args()[1:]
	switch c := len(args); c {
	case 1:
		arg := args[0].String()
		if cv, ok := Get(arg); ok {
			cv.Toggle()
		} else {
			log.Printf("toggle: Cvar not found %v", arg)
			conlog.Printf("toggle: variable %v not found\n", arg)
		}
	default:
		conlog.Printf("toggle <cvar> : toggle cvar\n")
	}
	return nil
}

func incr(n string, v float32) {
	if cv, ok := Get(n); ok {
		cv.SetValue(cv.Value() + v)
	} else {
		log.Printf("Cvar not found %v", n)
		conlog.Printf("inc: variable %v not found\n", n)
	}
}

func inc(a cmd.Arguments) error {
	args := a.Args()[1:]
	switch c := len(args); c {
	case 1:
		incr(args[0].String(), 1)
	case 2:
		v, err := args[1].ParseFloat32()
		if err != nil {
			conlog.Printf("inc: %v\n", err)
			return nil
		}
		incr(args[0].String(), v)
	default:
		conlog.Printf("inc <cvar> [amount] : increment cvar\n")
	}
	return nil
}

func reset(a cmd.Arguments) error {
	args := a.Args()[1:]
	switch c := len(args); c {
	case 1:
		arg := args[0].String()
		if cv, ok := Get(arg); ok {
			cv.Reset()
		} else {
			log.Printf("Cvar not found %v", arg)
			conlog.Printf("reset: variable %v not found\n", arg)
		}
	default:
		conlog.Printf("reset <cvar> : reset cvar to default\n")
	}
	return nil
}

func resetAll(_ cmd.Arguments) error {
	for _, cv := range All() {
		cv.Reset()
	}
	return nil
}

// list prints all cvars, or those starting with the first argument.
func list(a cmd.Arguments) error {
	prefix := a.Argv(1).String()
	cvars := make([]*Cvar, 0, len(cvarArray))
	for _, cv := range cvarArray {
		if strings.HasPrefix(cv.Name(), prefix) {
			cvars = append(cvars, cv)
		}
	}
	sort.Slice(cvars, func(i, j int) bool { return cvars[i].name < cvars[j].name })
	for _, v := range cvars {
		mark := " "
		if v.Archive() {
			mark = "*"
		}
		conlog.Printf("%s %s \"%s\"\n", mark, v.Name(), v.String())
	}
	if prefix != "" {
		conlog.Printf("%v cvars beginning with \"%s\"\n", len(cvars), prefix)
	} else {
		conlog.Printf("%v cvars\n", len(cvars))
	}
	return nil
}

func cycle(a cmd.Arguments) error {
	args := a.Args()[1:]
	if len(args) < 2 {
		conlog.Printf("cycle <cvar> <value list>: cycle cvar through a list of values\n")
		return nil
	}
	cv, ok := Get(args[0].String())
	if !ok {
		conlog.Printf("cycle: variable %v not found\n", args[0].String())
		return nil
	}
	oldValue := cv.String()
	i := 0
	for i < len(args)-1 {
		i++
		if oldValue == args[i].String() {
			break
		}
	}
	i %= len(args) - 1
	i++
	cv.SetByString(args[i].String())
	return nil
}
