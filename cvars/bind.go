// SPDX-License-Identifier: GPL-2.0-or-later

package cvars

import (
	"github.com/go-gl/mathgl/mgl32"

	"goscene/cvar"
	"goscene/scene"
)

// SceneSettings collects the scene tunables from the current cvar values.
func SceneSettings() scene.Settings {
	return scene.Settings{
		Speed:      CameraSpeed.Value(),
		FastScale:  CameraFastScale.Value(),
		DragScale:  CameraDragScale.Value(),
		TurnScale:  CameraTurnScale.Value(),
		Inertia:    CameraInertia.Value(),
		ClearColor: mgl32.Vec3{ClearRed.Value(), ClearGreen.Value(), ClearBlue.Value()},
		MaxHeight:  TerrainMaxHeight.Value(),
		FogColor:   mgl32.Vec3{FogRed.Value(), FogGreen.Value(), FogBlue.Value()},
		FogDensity: FogDensity.Value(),
		Skybox:     Skybox.String(),
	}
}

// BindScene makes later changes of the scene cvars take effect on s right
// away. The projection cvars update the camera.
func BindScene(s *scene.Scene) {
	c := s.Camera()
	c.SetFOV(CameraFov.Value())
	c.SetNear(CameraNear.Value())
	c.SetFar(CameraFar.Value())
	CameraFov.SetCallback(func(cv *cvar.Cvar) { c.SetFOV(cv.Value()) })
	CameraNear.SetCallback(func(cv *cvar.Cvar) { c.SetNear(cv.Value()) })
	CameraFar.SetCallback(func(cv *cvar.Cvar) { c.SetFar(cv.Value()) })

	update := func(*cvar.Cvar) {
		s.SetSettings(SceneSettings())
	}
	for _, cv := range []*cvar.Cvar{
		CameraSpeed, CameraFastScale, CameraDragScale, CameraTurnScale,
		CameraInertia, ClearRed, ClearGreen, ClearBlue, TerrainMaxHeight,
		FogRed, FogGreen, FogBlue, FogDensity,
	} {
		cv.SetCallback(update)
	}
	update(nil)
}
