// SPDX-License-Identifier: GPL-2.0-or-later

// Package commandline holds the command line flags. Arguments after the
// flags are startup commands, each one starting with a '+':
//
//	goscene -scene demo.txt +cam_speed 10 +set skybox sky/
package commandline

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

var (
	dump bool

	fullscreen = boolInt{false, 0}

	height int
	vsync  int
	width  int

	basedir     string
	configFile  string
	scene       string
	sessionFile string
)

type boolInt struct {
	set bool
	num int
}

func (b *boolInt) IsBoolFlag() bool {
	// We can not support both "-flag" and "-flag 10"
	// This allows "-flag", and "-flag=10"
	// and also "-flag=true" and "-flag=false"
	// but not "-flag 10"
	return true
}

func (b *boolInt) Set(s string) error {
	v, err := strconv.ParseInt(s, 0, strconv.IntSize)
	if err != nil {
		v, err := strconv.ParseBool(s)
		b.set = v
		return err
	}
	b.set = true
	b.num = int(v)
	return nil
}

func (b *boolInt) String() string {
	return fmt.Sprintf("Set: %v, Num: %v", b.set, b.num)
}

func init() {
	flag.BoolVar(&dump, "dump", false, "print the parsed scene records and exit")

	flag.Var(&fullscreen, "fullscreen", "fullscreen window, optional display index")

	flag.IntVar(&height, "height", -1, "window height, negative is unset")
	flag.IntVar(&vsync, "vsync", -1, "vertical sync 0 or 1, negative is unset")
	flag.IntVar(&width, "width", -1, "window width, negative is unset")

	flag.StringVar(&basedir, "basedir", "", "asset directory, defaults to the working directory")
	flag.StringVar(&configFile, "config", "goscene.yaml", "settings file")
	flag.StringVar(&scene, "scene", "", "scene description, the demo scene if empty")
	flag.StringVar(&sessionFile, "session", "", "file to restore the camera from and save it to on exit")
}

func BaseDirectory() string {
	return basedir
}

func Config() string {
	return configFile
}

func Scene() string {
	return scene
}

func Session() string {
	return sessionFile
}

func Dump() bool {
	return dump
}

func Height() int {
	return height
}

func Width() int {
	return width
}

// VSync reports the requested vertical sync, ok is false if unset.
func VSync() (on bool, ok bool) {
	return vsync > 0, vsync >= 0
}

func Fullscreen() bool {
	return fullscreen.set
}

func FullscreenDisplay() int {
	return fullscreen.num
}

// Commands returns the startup commands of the non flag arguments.
func Commands() []string {
	return splitCommands(flag.Args())
}

func splitCommands(args []string) []string {
	var cmds []string
	var cur []string
	flush := func() {
		if len(cur) > 0 {
			cmds = append(cmds, strings.Join(cur, " "))
		}
		cur = nil
	}
	for _, a := range args {
		if strings.HasPrefix(a, "+") {
			flush()
			a = a[1:]
			if a == "" {
				continue
			}
			cur = []string{a}
			continue
		}
		if cur == nil {
			// stray argument before the first command
			continue
		}
		if strings.ContainsAny(a, " \t") {
			a = strconv.Quote(a)
		}
		cur = append(cur, a)
	}
	flush()
	return cmds
}
