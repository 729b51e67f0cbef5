// SPDX-License-Identifier: GPL-2.0-or-later

// Package cmd splits text lines into arguments and dispatches them to named
// handlers. The console commands and the scene file records share it.
package cmd

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Func handles one line. args.Argv(0) is the command name.
type Func func(args Arguments) error

// Commands maps lower case names to handlers.
type Commands map[string]Func

func New() *Commands {
	c := make(Commands)
	return &c
}

func (c *Commands) Add(name string, f Func) error {
	n := strings.ToLower(name)
	if _, ok := (*c)[n]; ok {
		return errors.Errorf("command %s already defined", n)
	}
	(*c)[n] = f
	return nil
}

func (c *Commands) Exists(name string) bool {
	_, ok := (*c)[strings.ToLower(name)]
	return ok
}

// List returns the sorted command names.
func (c *Commands) List() []string {
	names := make([]string, 0, len(*c))
	for n := range *c {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Execute runs the handler named by the first argument. It reports false
// for empty lines and unknown commands.
func (c *Commands) Execute(a Arguments) (bool, error) {
	args := a.Args()
	if len(args) == 0 {
		return false, nil
	}
	f, ok := (*c)[strings.ToLower(args[0].String())]
	if !ok {
		return false, nil
	}
	if err := f(a); err != nil {
		return false, errors.Wrap(err, args[0].String())
	}
	return true, nil
}

// Must panics on registration errors of built-in commands.
func Must(err error) {
	if err != nil {
		panic(err.Error())
	}
}
