// SPDX-License-Identifier: GPL-2.0-or-later

package cvars

import (
	"goscene/conlog"
	"goscene/cvar"
	"goscene/scene"
)

var (
	CameraDragScale  *cvar.Cvar
	CameraFar        *cvar.Cvar
	CameraFastScale  *cvar.Cvar
	CameraFov        *cvar.Cvar
	CameraInertia    *cvar.Cvar
	CameraNear       *cvar.Cvar
	CameraSpeed      *cvar.Cvar
	CameraTurnScale  *cvar.Cvar
	ClearBlue        *cvar.Cvar
	ClearGreen       *cvar.Cvar
	ClearRed         *cvar.Cvar
	Developer        *cvar.Cvar
	FogBlue          *cvar.Cvar
	FogDensity       *cvar.Cvar
	FogGreen         *cvar.Cvar
	FogRed           *cvar.Cvar
	HostMaxFps       *cvar.Cvar
	HostTimeScale    *cvar.Cvar
	Skybox           *cvar.Cvar
	TerrainMaxHeight *cvar.Cvar
	VideoFullscreen  *cvar.Cvar
	VideoHeight      *cvar.Cvar
	VideoVSync       *cvar.Cvar
	VideoWidth       *cvar.Cvar
)

func init() {
	CameraDragScale = cvar.MustRegister("cam_drag_scale", "0.1", cvar.ARCHIVE)
	CameraFar = cvar.MustRegister("cam_far", "1000", cvar.ARCHIVE)
	CameraFastScale = cvar.MustRegister("cam_fast_scale", "2", cvar.ARCHIVE)
	CameraFov = cvar.MustRegister("cam_fov", "60", cvar.ARCHIVE)
	CameraInertia = cvar.MustRegister("cam_inertia", "0.9", cvar.ARCHIVE)
	CameraNear = cvar.MustRegister("cam_near", "0.1", cvar.ARCHIVE)
	CameraSpeed = cvar.MustRegister("cam_speed", "5", cvar.ARCHIVE)
	CameraTurnScale = cvar.MustRegister("cam_turn_scale", "0.05", cvar.ARCHIVE)
	ClearBlue = cvar.MustRegister("clear_b", "0.1", cvar.ARCHIVE)
	ClearGreen = cvar.MustRegister("clear_g", "0.1", cvar.ARCHIVE)
	ClearRed = cvar.MustRegister("clear_r", "0.1", cvar.ARCHIVE)
	Developer = cvar.MustRegister("developer", "0", cvar.NONE)
	FogBlue = cvar.MustRegister("fog_b", "0.5", cvar.ARCHIVE)
	FogDensity = cvar.MustRegister("fog_density", "0.04", cvar.ARCHIVE)
	FogGreen = cvar.MustRegister("fog_g", "0.5", cvar.ARCHIVE)
	FogRed = cvar.MustRegister("fog_r", "0.5", cvar.ARCHIVE)
	HostMaxFps = cvar.MustRegister("host_maxfps", "250", cvar.ARCHIVE)
	HostTimeScale = cvar.MustRegister("host_timescale", "0", cvar.NONE)
	Skybox = cvar.MustRegister("skybox", scene.DefaultSkybox, cvar.ARCHIVE)
	TerrainMaxHeight = cvar.MustRegister("terrain_max_height", "8", cvar.ARCHIVE)
	VideoFullscreen = cvar.MustRegister("vid_fullscreen", "0", cvar.ARCHIVE)
	VideoHeight = cvar.MustRegister("vid_height", "576", cvar.ARCHIVE)
	VideoVSync = cvar.MustRegister("vid_vsync", "1", cvar.ARCHIVE)
	VideoWidth = cvar.MustRegister("vid_width", "1024", cvar.ARCHIVE)

	Developer.SetCallback(func(cv *cvar.Cvar) {
		conlog.SetDeveloper(cv.Bool())
	})
}
