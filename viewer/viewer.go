// SPDX-License-Identifier: GPL-2.0-or-later

// Package viewer runs the interactive frame loop.
package viewer

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/gopxl/mainthread/v2"
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"

	"goscene/cbuf"
	"goscene/cmd"
	"goscene/commandline"
	"goscene/config"
	"goscene/conlog"
	"goscene/cvar"
	"goscene/cvars"
	"goscene/filesystem"
	"goscene/gametime"
	"goscene/glh"
	"goscene/input"
	"goscene/scene"
	"goscene/scenefile"
	"goscene/session"
	"goscene/window"
)

type Viewer struct {
	cmds  *cmd.Commands
	cbuf  cbuf.CommandBuffer
	input *input.State
	clock gametime.GameTime

	dev    *glh.Device
	scene  *scene.Scene
	quit   bool
	resize bool
}

// New sets up the command handling. The window and scene come with Run.
func New() (*Viewer, error) {
	v := &Viewer{
		cmds:  cmd.New(),
		input: input.New(),
	}
	if err := cvar.AddCommands(v.cmds); err != nil {
		return nil, err
	}
	if err := v.input.Commands(v.cmds); err != nil {
		return nil, err
	}
	if err := v.cmds.Add("quit", v.quitCmd); err != nil {
		return nil, err
	}
	if err := v.cmds.Add("echo", echo); err != nil {
		return nil, err
	}
	v.cbuf.SetCommandExecutors([]cbuf.Efunc{
		func(_ *cbuf.CommandBuffer, a cmd.Arguments) (bool, error) {
			return v.cmds.Execute(a)
		},
		func(_ *cbuf.CommandBuffer, a cmd.Arguments) (bool, error) {
			return cvar.Execute(a)
		},
	})
	return v, nil
}

func (v *Viewer) quitCmd(_ cmd.Arguments) error {
	v.quit = true
	return nil
}

func echo(a cmd.Arguments) error {
	conlog.Printf("%s\n", a.ArgumentString())
	return nil
}

// Exec queues a command line, it runs with the next frame.
func (v *Viewer) Exec(line string) {
	v.cbuf.AddText(line + "\n")
}

func (v *Viewer) Quit() bool {
	return v.quit
}

// handle turns one SDL event into commands and pointer events.
func (v *Viewer) handle(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		name := strings.ToLower(sdl.GetScancodeName(e.Keysym.Scancode))
		if line := v.input.KeyEvent(name, e.State == sdl.PRESSED, e.Repeat != 0); line != "" {
			v.Exec(line)
		}
	case *sdl.MouseButtonEvent:
		if e.Button != sdl.BUTTON_LEFT {
			return
		}
		v.input.Pointer(scene.PointerEvent{
			Kind:    scene.PointerButton,
			X:       float32(e.X),
			Y:       float32(e.Y),
			Pressed: e.State == sdl.PRESSED,
		})
	case *sdl.MouseMotionEvent:
		v.input.Pointer(scene.PointerEvent{
			Kind: scene.PointerMove,
			X:    float32(e.X),
			Y:    float32(e.Y),
		})
	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			v.resize = true
		}
	case *sdl.QuitEvent:
		v.quit = true
	}
}

func (v *Viewer) pollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		v.handle(event)
	}
}

func (v *Viewer) runCommands() {
	if err := v.cbuf.Execute(); err != nil {
		log.Printf("command failed: %v", err)
		conlog.Printf("%v\n", err)
	}
}

// loadScene fills the scene from the -scene file or the demo layout. The
// directory of the scene file joins the asset search path.
func (v *Viewer) loadScene(name string) error {
	if name == "" {
		v.scene.LoadDemo()
		return nil
	}
	recs, err := scenefile.Load(name)
	if err != nil {
		return err
	}
	v.scene.Load(recs)
	return nil
}

func (v *Viewer) frame() {
	v.pollEvents()
	v.runCommands()
	if !v.clock.UpdateTime() {
		return
	}
	if v.resize {
		v.resize = false
		v.scene.Resize(window.Size())
	}
	if window.Minimized() {
		return
	}
	v.scene.Update(float32(v.clock.FrameTime()), v.input.Snapshot())
	v.scene.Render()
	window.EndRendering()
	v.clock.FrameIncrease()
}

func windowSize() (int32, int32) {
	w, h := int32(cvars.VideoWidth.Value()), int32(cvars.VideoHeight.Value())
	if commandline.Width() > 0 {
		w = int32(commandline.Width())
	}
	if commandline.Height() > 0 {
		h = int32(commandline.Height())
	}
	return w, h
}

func setupFilesystem() {
	if dir := commandline.BaseDirectory(); dir != "" {
		filesystem.UseBaseDir(dir)
	}
	if s := commandline.Scene(); s != "" {
		if dir := filepath.Dir(s); dir != "." {
			filesystem.AddDir(dir)
		}
	}
}

// Dump prints the records of the -scene file.
func Dump() error {
	setupFilesystem()
	name := commandline.Scene()
	if name == "" {
		return errors.New("-dump needs -scene")
	}
	recs, err := scenefile.Load(name)
	if err != nil {
		return err
	}
	spew.Fdump(os.Stdout, recs)
	return nil
}

// Run opens the window and renders until quit. SDL and GL are only touched
// through mainthread, so Run must be called inside mainthread.Run.
func Run() error {
	v, err := New()
	if err != nil {
		return err
	}
	setupFilesystem()
	if err := config.Load(commandline.Config()); err != nil {
		log.Printf("config: %v", err)
	}
	for _, c := range commandline.Commands() {
		v.Exec(c)
	}
	// startup commands may set the video cvars
	v.runCommands()
	if v.quit {
		return nil
	}

	mainthread.Call(func() { err = v.open() })
	if err != nil {
		return err
	}
	defer mainthread.Call(v.close)

	mainthread.Call(func() { err = v.loadScene(commandline.Scene()) })
	if err != nil {
		return err
	}
	conlog.Printf("Scene with %d nodes\n", countNodes(v.scene.Root())-1)

	sessionFile := commandline.Session()
	if sessionFile != "" {
		st, ok, err := session.Load(sessionFile)
		if err != nil {
			log.Printf("session: %v", err)
		} else if ok {
			st.Apply(v.scene)
		}
	}

	v.clock.Reset()
	for !v.quit {
		mainthread.Call(v.frame)
	}

	if sessionFile != "" {
		if err := session.Save(sessionFile, session.Capture(v.scene)); err != nil {
			log.Printf("session: %v", err)
		}
	}
	if err := config.Save(commandline.Config()); err != nil {
		log.Printf("config: %v", err)
	}
	return nil
}

func (v *Viewer) open() error {
	ver := sdl.Version{}
	sdl.GetVersion(&ver)
	log.Printf("Found SDL version %d.%d.%d\n", ver.Major, ver.Minor, ver.Patch)
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return errors.Wrap(err, "sdl init")
	}

	fullscreen := cvars.VideoFullscreen.Bool() || commandline.Fullscreen()
	w, h := windowSize()
	window.SetMode(w, h, fullscreen, commandline.FullscreenDisplay())
	vsync := cvars.VideoVSync.Bool()
	if on, ok := commandline.VSync(); ok {
		vsync = on
	}
	window.SetVSync(vsync)

	v.dev = glh.NewDevice()
	w, h = window.Size()
	v.scene = scene.New(v.dev, w, h, cvars.SceneSettings())
	cvars.BindScene(v.scene)
	return nil
}

func (v *Viewer) close() {
	v.scene.Destroy()
	v.dev.Release()
	window.Shutdown()
	sdl.Quit()
}

func countNodes(n *scene.Node) int {
	c := 0
	n.Walk(func(*scene.Node) bool {
		c++
		return true
	})
	return c
}
