// SPDX-License-Identifier: GPL-2.0-or-later

// Package scene holds the transform tree, its drawables and the frame
// update and render of the viewer.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"goscene/camera"
	"goscene/conlog"
	"goscene/gpu"
	"goscene/postprocess"
)

// Settings are the tunables of a scene. The zero value is not useful, start
// from DefaultSettings.
type Settings struct {
	// camera speed in units per second and its multiplier while Fast is held
	Speed     float32
	FastScale float32
	// pointer travel to turn delta, turn delta to radians, and the
	// per frame decay of the turn delta
	DragScale float32
	TurnScale float32
	Inertia   float32

	ClearColor mgl32.Vec3

	MaxHeight  float32
	FogColor   mgl32.Vec3
	FogDensity float32

	// Skybox is the base name of the six cube faces, empty for none.
	Skybox string
}

func DefaultSettings() Settings {
	return Settings{
		Speed:      5,
		FastScale:  2,
		DragScale:  0.1,
		TurnScale:  0.05,
		Inertia:    0.9,
		ClearColor: mgl32.Vec3{0.1, 0.1, 0.1},
		MaxHeight:  DefaultMaxHeight,
		FogColor:   DefaultFogColor,
		FogDensity: DefaultFogDensity,
		Skybox:     DefaultSkybox,
	}
}

type animated struct {
	node *Node
	anim Animation
}

type Scene struct {
	dev      gpu.Device
	settings Settings

	root   *Node
	camera *camera.Camera
	post   *postprocess.Stage
	skybox *Skybox

	animations []animated

	pointerPressed bool
	lastX, lastY   float32
	// turn deltas left over from dragging, decayed every frame
	deltaX, deltaY float32

	width, height int32
}

// New creates an empty scene rendering at width x height.
func New(dev gpu.Device, width, height int32, s Settings) *Scene {
	sc := &Scene{
		dev:      dev,
		settings: s,
		root:     NewNode("root"),
		camera:   camera.New(ratio(width, height)),
		width:    width,
		height:   height,
	}
	sc.camera.SetLocation(mgl32.Vec3{0, 10, 15})
	sc.camera.SetTarget(mgl32.Vec3{0, 0, 0})
	sc.post = postprocess.New(dev, width, height)
	if s.Skybox != "" {
		sc.skybox = NewSkybox(dev, s.Skybox)
	}
	dev.SetDepthTest(true)
	return sc
}

func ratio(w, h int32) float32 {
	if h <= 0 {
		return 1
	}
	return float32(w) / float32(h)
}

func (s *Scene) Root() *Node                 { return s.root }
func (s *Scene) Camera() *camera.Camera      { return s.camera }
func (s *Scene) Post() *postprocess.Stage    { return s.post }
func (s *Scene) Settings() Settings          { return s.settings }
func (s *Scene) Size() (width, height int32) { return s.width, s.height }
func (s *Scene) TurnDelta() (dx, dy float32) { return s.deltaX, s.deltaY }

// SetSettings replaces the tunables. Terrains already in the tree take the
// new height and fog values, a changed Skybox only applies to new scenes.
func (s *Scene) SetSettings(settings Settings) {
	s.settings = settings
	s.root.Walk(func(n *Node) bool {
		if t, ok := n.component.(*Terrain); ok {
			t.MaxHeight = settings.MaxHeight
			t.FogColor = settings.FogColor
			t.FogDensity = settings.FogDensity
		}
		return true
	})
}

// Animate runs a on n every frame.
func (s *Scene) Animate(n *Node, a Animation) {
	s.animations = append(s.animations, animated{n, a})
}

// OnClick starts or ends a drag.
func (s *Scene) OnClick(x, y float32, pressed bool) {
	s.pointerPressed = pressed
	if pressed {
		s.lastX, s.lastY = x, y
	}
}

// OnDrag turns the pointer travel since the last event into a turn delta.
func (s *Scene) OnDrag(x, y float32) {
	if !s.pointerPressed {
		return
	}
	s.deltaX = (s.lastX - x) * s.settings.DragScale
	s.deltaY = (s.lastY - y) * s.settings.DragScale
	s.lastX, s.lastY = x, y
}

// Update advances the scene by dt seconds. A nil in means no input.
func (s *Scene) Update(dt float32, in *Input) {
	if in == nil {
		in = &Input{}
	}
	speed := s.settings.Speed * dt
	if in.Fast {
		speed *= s.settings.FastScale
	}
	front := s.camera.Front()
	right := s.camera.Right()
	if in.Forward {
		s.camera.Move(front.Mul(speed))
	}
	if in.Back {
		s.camera.Move(front.Mul(-speed))
	}
	if in.Left {
		s.camera.Move(right.Mul(-speed))
	}
	if in.Right {
		s.camera.Move(right.Mul(speed))
	}

	for _, e := range in.Pointer {
		switch e.Kind {
		case PointerButton:
			s.OnClick(e.X, e.Y, e.Pressed)
		case PointerMove:
			s.OnDrag(e.X, e.Y)
		}
	}
	if s.deltaX != 0 || s.deltaY != 0 {
		s.camera.Rotate(mgl32.HomogRotate3DY(s.deltaX * s.settings.TurnScale))
		s.camera.Rotate(mgl32.HomogRotate3D(s.deltaY*s.settings.TurnScale, right))
		s.deltaX *= s.settings.Inertia
		s.deltaY *= s.settings.Inertia
	}

	for i := 0; i < in.CycleEffect; i++ {
		s.post.Cycle()
	}

	for _, a := range s.animations {
		a.anim.Animate(a.node, dt)
	}
	s.root.Update()
}

// light finds the first light of the tree.
func (s *Scene) light(rc *RenderContext) {
	s.root.Walk(func(n *Node) bool {
		if l, ok := n.component.(*Light); ok {
			rc.LightPosition = n.WorldPosition()
			rc.LightColor = l.Color
			return false
		}
		return true
	})
}

// Render draws one frame: the background and the opaque drawables, then the
// blended ones without depth writes, all into the offscreen target, and
// finally the post processed copy to the screen.
func (s *Scene) Render() {
	rc := newRenderContext(s.camera)
	s.light(rc)

	s.post.Bind()
	s.dev.SetDepthTest(true)
	c := s.settings.ClearColor
	s.dev.ClearColor(c[0], c[1], c[2], 1)
	s.dev.Clear(true, true)

	if s.skybox != nil {
		s.skybox.Draw(rc)
	}

	s.root.Render(rc, Opaque)

	s.dev.SetBlend(true)
	s.dev.SetDepthMask(false)
	s.root.Render(rc, Blended)

	s.dev.SetDepthMask(true)
	s.dev.SetBlend(false)

	s.post.Present()
}

// Resize follows the window size. Zero sizes, as reported for minimized
// windows, are ignored.
func (s *Scene) Resize(width, height int32) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == s.width && height == s.height {
		return
	}
	conlog.DPrintf("resize %dx%d\n", width, height)
	s.width, s.height = width, height
	s.camera.SetRatio(ratio(width, height))
	s.post.Resize(width, height)
}

// Destroy releases the tree and all GPU resources of the scene.
func (s *Scene) Destroy() {
	s.root.Destroy()
	s.animations = nil
	if s.skybox != nil {
		s.skybox.Release()
		s.skybox = nil
	}
	s.post.Release()
}
