// SPDX-License-Identifier: GPL-2.0-or-later

package scene

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"

	"goscene/gpu"
	"goscene/image"
)

const (
	DefaultMaxHeight  = 8
	DefaultFogDensity = 0.04
)

var DefaultFogColor = mgl32.Vec3{0.5, 0.5, 0.5}

// TerrainGrid builds the flat grid of a terrain centered at the origin. Every
// row z emits two vertices per column x, one at the front and one at the back
// edge of the row, so the whole grid is a single triangle strip of
// 2*(xSlices+1)*zSlices vertices. pos holds x,z pairs, uv u,v pairs.
func TerrainGrid(width, depth float32, xSlices, zSlices int) (pos, uv []float32) {
	if xSlices <= 0 || zSlices <= 0 {
		return nil, nil
	}
	n := 2 * (xSlices + 1) * zSlices
	pos = make([]float32, 0, 2*n)
	uv = make([]float32, 0, 2*n)
	for z := 0; z < zSlices; z++ {
		v1 := float32(z) / float32(zSlices)
		v2 := float32(z+1) / float32(zSlices)
		z1 := v1*depth - depth/2
		z2 := v2*depth - depth/2
		for x := 0; x <= xSlices; x++ {
			u := float32(x) / float32(xSlices)
			px := u*width - width/2
			pos = append(pos, px, z1, px, z2)
			uv = append(uv, u, v1, u, v2)
		}
	}
	return pos, uv
}

// Terrain is a height mapped grid. It is always drawn in the opaque pass.
type Terrain struct {
	prog      gpu.Program
	geom      gpu.Geometry
	heightMap gpu.Texture
	vertices  int

	MaxHeight  float32
	FogColor   mgl32.Vec3
	FogDensity float32
}

func NewTerrain(dev gpu.Device, width, depth float32, xSlices, zSlices int, heightMap string) *Terrain {
	t := &Terrain{
		MaxHeight:  DefaultMaxHeight,
		FogColor:   DefaultFogColor,
		FogDensity: DefaultFogDensity,
	}
	p, err := dev.Program(terrainShader)
	if err != nil {
		log.Printf("terrain: %v", err)
	}
	t.prog = p

	pos, uv := TerrainGrid(width, depth, xSlices, zSlices)
	if len(pos) == 0 {
		log.Printf("Warning: terrain with %dx%d slices is empty", xSlices, zSlices)
	} else {
		t.geom = dev.NewGeometry(&gpu.GeometryData{
			Primitive: gpu.TriangleStrip,
			Attributes: []gpu.Attribute{
				{Size: 2, Data: pos},
				{Size: 2, Data: uv},
			},
		})
		t.vertices = len(pos) / 2
	}

	if px, err := image.Load(heightMap, image.Gray); err != nil {
		log.Printf("Warning: terrain without height map: %v", err)
	} else {
		t.heightMap = dev.NewTexture2D(px, gpu.TextureOptions{Clamp: true})
	}
	return t
}

func (t *Terrain) VertexCount() int {
	return t.vertices
}

func (t *Terrain) Opacity() float32 {
	return 1
}

func (t *Terrain) Draw(rc *RenderContext, n *Node) {
	if t.prog == nil {
		return
	}
	t.prog.Use()
	t.prog.SetMat4("projection", rc.Projection)
	t.prog.SetMat4("view", rc.View)
	t.prog.SetMat4("model", n.Global())
	t.prog.SetFloat("max_height", t.MaxHeight)
	t.prog.SetVec3("fog_color", t.FogColor)
	t.prog.SetFloat("fog_density", t.FogDensity)
	t.prog.SetInt("heightMap", 0)
	if t.heightMap != nil {
		t.heightMap.Bind(0)
	}
	if t.geom != nil {
		t.geom.Draw()
	}
}

func (t *Terrain) Release() {
	if t.geom != nil {
		t.geom.Delete()
		t.geom = nil
	}
	if t.heightMap != nil {
		t.heightMap.Delete()
		t.heightMap = nil
	}
}
