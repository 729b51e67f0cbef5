// SPDX-License-Identifier: GPL-2.0-or-later

package scene

import (
	"fmt"
	"log"

	"goscene/gpu"
	"goscene/image"
)

// 36 vertices of a unit cube seen from the inside
var skyboxPositions = []float32{
	-1, 1, -1, -1, -1, -1, 1, -1, -1,
	1, -1, -1, 1, 1, -1, -1, 1, -1,

	-1, -1, 1, -1, -1, -1, -1, 1, -1,
	-1, 1, -1, -1, 1, 1, -1, -1, 1,

	1, -1, -1, 1, -1, 1, 1, 1, 1,
	1, 1, 1, 1, 1, -1, 1, -1, -1,

	-1, -1, 1, -1, 1, 1, 1, 1, 1,
	1, 1, 1, 1, -1, 1, -1, -1, 1,

	-1, 1, -1, 1, 1, -1, 1, 1, 1,
	1, 1, 1, -1, 1, 1, -1, 1, -1,

	-1, -1, -1, -1, -1, 1, 1, -1, -1,
	1, -1, -1, -1, -1, 1, 1, -1, 1,
}

// DefaultSkybox is the face base name of the default background.
const DefaultSkybox = "skybox/sky-cube-map-"

// SkyboxFaces returns the six face files of a cube map, in the order
// -Z, -X, +Z, +X, +Y, -Y.
func SkyboxFaces(base string) [6]string {
	var f [6]string
	for i := range f {
		f[i] = fmt.Sprintf("%s%d.png", base, i)
	}
	return f
}

// Skybox is the background, drawn before everything else.
type Skybox struct {
	prog gpu.Program
	geom gpu.Geometry
	cube gpu.Texture
}

// NewSkybox loads the faces of base. If any face is missing the cube map
// stays absent and the box is drawn with an unbound texture.
func NewSkybox(dev gpu.Device, base string) *Skybox {
	s := &Skybox{}
	p, err := dev.Program(skyboxShader)
	if err != nil {
		log.Printf("skybox: %v", err)
	}
	s.prog = p
	s.geom = dev.NewGeometry(&gpu.GeometryData{
		Primitive:  gpu.Triangles,
		Attributes: []gpu.Attribute{{Size: 3, Data: skyboxPositions}},
	})

	var faces [6]*image.Pixels
	for i, name := range SkyboxFaces(base) {
		px, err := image.Load(name, image.RGBA)
		if err != nil {
			log.Printf("Warning: skybox without cube map: %v", err)
			return s
		}
		faces[i] = px
	}
	s.cube = dev.NewTextureCube(faces)
	return s
}

func (s *Skybox) Draw(rc *RenderContext) {
	if s.prog == nil {
		return
	}
	s.prog.Use()
	s.prog.SetMat4("projection", rc.Projection)
	// rotation only, the box follows the eye
	s.prog.SetMat4("view", rc.View.Mat3().Mat4())
	s.prog.SetInt("skybox", 0)
	if s.cube != nil {
		s.cube.Bind(0)
	}
	s.geom.Draw()
}

func (s *Skybox) Release() {
	s.geom.Delete()
	if s.cube != nil {
		s.cube.Delete()
		s.cube = nil
	}
}
