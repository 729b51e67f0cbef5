// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"

	"goscene/gpu"
	"goscene/image"
)

type texture struct {
	res    resource
	target uint32
}

func deleteTexture(t uint32) {
	gl.DeleteTextures(1, &t)
}

func newTexture(target uint32) *texture {
	t := &texture{target: target}
	gl.GenTextures(1, &t.res.id)
	t.res.track(t, deleteTexture)
	return t
}

func (t *texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(t.target, t.res.id)
}

func (t *texture) Delete() {
	t.res.release(deleteTexture)
}

func formats(ch image.Channels) (internal int32, format uint32) {
	if ch == image.Gray {
		return gl.R8, gl.RED
	}
	return gl.RGBA8, gl.RGBA
}

func newTexture2D(p *image.Pixels, o gpu.TextureOptions) *texture {
	t := newTexture(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, t.res.id)
	defer gl.BindTexture(gl.TEXTURE_2D, 0)

	internal, format := formats(p.Channels)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(p.Width), int32(p.Height),
		0, format, gl.UNSIGNED_BYTE, pixels(p))

	wrap := int32(gl.REPEAT)
	if o.Clamp {
		wrap = gl.CLAMP_TO_EDGE
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	if o.MipMaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	} else {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	}
	checkError("texture upload")
	return t
}

func pixels(p *image.Pixels) unsafe.Pointer {
	if len(p.Pix) == 0 {
		return nil
	}
	return gl.Ptr(p.Pix)
}

// face order of gpu.Device.NewTextureCube
var cubeFaces = [6]uint32{
	gl.TEXTURE_CUBE_MAP_NEGATIVE_Z,
	gl.TEXTURE_CUBE_MAP_NEGATIVE_X,
	gl.TEXTURE_CUBE_MAP_POSITIVE_Z,
	gl.TEXTURE_CUBE_MAP_POSITIVE_X,
	gl.TEXTURE_CUBE_MAP_POSITIVE_Y,
	gl.TEXTURE_CUBE_MAP_NEGATIVE_Y,
}

func newTextureCube(faces [6]*image.Pixels) *texture {
	t := newTexture(gl.TEXTURE_CUBE_MAP)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, t.res.id)
	defer gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	for i, p := range faces {
		if p == nil {
			continue
		}
		internal, format := formats(p.Channels)
		gl.TexImage2D(cubeFaces[i], 0, internal, int32(p.Width), int32(p.Height),
			0, format, gl.UNSIGNED_BYTE, pixels(p))
	}
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	checkError("cube map upload")
	return t
}
