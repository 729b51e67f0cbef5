// SPDX-License-Identifier: GPL-2.0-or-later

// Package window owns the SDL window and its GL context. All functions must
// be called on the main thread.
package window

import (
	"log"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/veandco/go-sdl2/sdl"
)

const title = "goscene"

var (
	window  *sdl.Window
	context sdl.GLContext
)

func Get() *sdl.Window {
	return window
}

// Size is the size of the drawable in pixels, which differs from the window
// size on high density displays.
func Size() (int32, int32) {
	return window.GLGetDrawableSize()
}

func Shutdown() {
	if context != nil {
		sdl.GLDeleteContext(context)
		context = nil
	}
	if window != nil {
		window.Destroy()
		window = nil
	}
}

func Fullscreen() bool {
	return window.GetFlags()&sdl.WINDOW_FULLSCREEN != 0
}

func VSync() bool {
	i, _ := sdl.GLGetSwapInterval()
	return i == 1
}

func SetVSync(on bool) {
	i := 0
	if on {
		i = 1
	}
	if err := sdl.GLSetSwapInterval(i); err != nil {
		log.Printf("Couldn't set vsync %v: %v", on, err)
	}
}

func Minimized() bool {
	return window.GetFlags()&sdl.WINDOW_MINIMIZED != 0
}

// contextVersions are tried in order, the first is needed for debug output.
var contextVersions = [][2]int{{4, 3}, {3, 3}}

func createWindow(width, height int32, flags uint32) *sdl.Window {
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)
	sdl.GLSetAttribute(sdl.GL_STENCIL_SIZE, 8)
	w, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, width, height, flags)
	if err == nil {
		return w
	}
	sdl.GLSetAttribute(sdl.GL_STENCIL_SIZE, 0)
	w, err = sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, width, height, flags)
	if err == nil {
		return w
	}
	log.Fatalf("Couldn't create window: %v", err)
	return nil
}

func createContext() {
	var err error
	debug := false
	for i, v := range contextVersions {
		sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, v[0])
		sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, v[1])
		if context, err = window.GLCreateContext(); err == nil {
			log.Printf("GL context %d.%d", v[0], v[1])
			debug = i == 0
			break
		}
	}
	if err != nil {
		log.Fatalf("Couldn't create GL context: %v", err)
	}
	// Initialize Glow
	if err := gl.Init(); err != nil {
		log.Fatalf("Couldn't init gl: %v", err)
	}
	log.Printf("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))
	if debug {
		gl.Enable(gl.DEBUG_OUTPUT)
		gl.DebugMessageCallback(debugCb, unsafe.Pointer(nil))
	}
}

// SetMode creates the window and context on the first call and resizes the
// window on later ones. A fullscreen window uses the desktop resolution of
// the given display.
func SetMode(width, height int32, fullscreen bool, display int) {
	if window == nil {
		flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_HIDDEN | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
		window = createWindow(width, height, flags)
	}
	if Fullscreen() {
		if err := window.SetFullscreen(0); err != nil {
			log.Fatalf("Couldn't leave fullscreen mode: %v", err)
		}
	}
	window.SetSize(width, height)
	window.SetPosition(sdl.WINDOWPOS_CENTERED_MASK|int32(display), sdl.WINDOWPOS_CENTERED_MASK|int32(display))
	if fullscreen {
		if err := window.SetFullscreen(sdl.WINDOW_FULLSCREEN_DESKTOP); err != nil {
			log.Fatalf("Couldn't set fullscreen mode: %v", err)
		}
	}

	window.Show()

	if context == nil {
		createContext()
	}
}

func debugCb(
	source uint32,
	gltype uint32,
	id uint32,
	severity uint32,
	length int32,
	message string,
	userParam unsafe.Pointer) {
	switch severity {
	case gl.DEBUG_SEVERITY_HIGH:
		log.Panicf("[GL_DEBUG] source %d gltype %d id %d severity %d length %d: %s", source, gltype, id, severity, length, message)
	case gl.DEBUG_SEVERITY_NOTIFICATION:
		// buffer placement chatter
	default:
		log.Printf("[GL_DEBUG] source %d gltype %d id %d severity %d length %d: %s", source, gltype, id, severity, length, message)
	}
}

func EndRendering() {
	window.GLSwap()
}
