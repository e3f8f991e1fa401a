package systems

import (
	"github.com/automoto/zoomview/components"
	"github.com/automoto/zoomview/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// StartFlyTo animates the camera to center on a scene point at the given
// zoom level. A running zoom session is stopped first.
func StartFlyTo(e *ecs.ECS, target math.Vec2, level float64, label string) bool {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return false
	}
	from, ok := CurrentLevel(e)
	if !ok {
		return false
	}
	StopZoom(e)

	camera := components.Camera.Get(cameraEntry)
	fly := components.FlyTo.Get(cameraEntry)
	d := config.Camera.FlyDuration
	fly.X = gween.New(float32(camera.Center.X), float32(target.X), d, ease.InOutCubic)
	fly.Y = gween.New(float32(camera.Center.Y), float32(target.Y), d, ease.InOutCubic)
	fly.Level = gween.New(float32(from), float32(level), d, ease.InOutQuad)
	fly.Active = true
	fly.Label = label
	return true
}

// StopFlyTo abandons a running fly-to where it is.
func StopFlyTo(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	fly := components.FlyTo.Get(cameraEntry)
	fly.Active = false
	fly.Label = ""
}

// UpdateFlyTo advances the fly-to tweens by one frame.
func UpdateFlyTo(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	fly := components.FlyTo.Get(cameraEntry)
	sc := CurrentScene(e)
	if !fly.Active || sc == nil {
		return
	}

	dt := float32(1) / float32(config.C.TPS)
	x, doneX := fly.X.Update(dt)
	y, doneY := fly.Y.Update(dt)
	level, doneLevel := fly.Level.Update(dt)

	camera := components.Camera.Get(cameraEntry)
	camera.LookAt(math.Vec2{X: float64(x), Y: float64(y)}, sc.Scale(float64(level)))

	if doneX && doneY && doneLevel {
		fly.Active = false
		fly.Label = ""
		SaveCurrentView(e)
	}
}
