package system

import (
	"math"

	"github.com/lixenwraith/balthazar/engine"
	"github.com/lixenwraith/balthazar/parameter"
	"github.com/lixenwraith/balthazar/vmath"
)

// CameraSystem follows the player and applies zoom steps
type CameraSystem struct {
	engine.SystemBase
}

// NewCameraSystem creates the camera system
func NewCameraSystem(world *engine.World) *CameraSystem {
	return &CameraSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *CameraSystem) Name() string {
	return "camera"
}

func (s *CameraSystem) Priority() int {
	return parameter.PriorityCamera
}

func (s *CameraSystem) Update() {
	r := s.Resource
	cam := r.Camera
	if cam == nil {
		return
	}
	follow := r.Toggles == nil || r.Toggles.CameraFollow
	zoom := r.Toggles == nil || r.Toggles.CameraZoom

	if follow {
		if pos, ok := PlayerPosition(s.World, r); ok {
			cam.Center = pos
		}
	}
	if zoom && r.Input != nil && r.Input.Zoom != 0 {
		cam.Zoom = ZoomBy(cam.Zoom, r.Input.Zoom)
	}
}

// ZoomBy applies steps of CameraZoomStep, positive zooms in, clamped to the zoom range
func ZoomBy(zoom float64, steps int) float64 {
	if zoom <= 0 {
		zoom = parameter.CameraDefaultZoom
	}
	zoom *= math.Pow(parameter.CameraZoomStep, float64(steps))
	return vmath.Clamp(zoom, parameter.CameraMinZoom, parameter.CameraMaxZoom)
}
