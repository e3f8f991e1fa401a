package systems

import (
	"github.com/automoto/zoomview/components"
	"github.com/automoto/zoomview/config"
	"github.com/automoto/zoomview/shared/scene"
	"github.com/automoto/zoomview/shared/zoom"
	"github.com/automoto/zoomview/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

// CameraAdapter lets the zoom animator scale the ECS camera. It looks the
// camera up on every call, so a removed camera turns the adapter into a
// no-op instead of a dangling pointer.
type CameraAdapter struct {
	World donburi.World
}

func (c CameraAdapter) ZoomBy(factor float64, origin math.Vec2) {
	cameraEntry, ok := components.Camera.First(c.World)
	if !ok || !cameraEntry.Valid() {
		return
	}
	components.Camera.Get(cameraEntry).ZoomBy(factor, origin)
}

// SpawnCamera creates the map camera with an animator that zooms it
// through CameraAdapter. A finished zoom session saves the view.
func SpawnCamera(e *ecs.ECS) error {
	cameraEntry, err := factory.CreateCamera(e, CameraAdapter{World: e.World})
	if err != nil {
		return err
	}
	zd := components.Zoom.Get(cameraEntry)
	zd.Animator.OnFinish = func(s zoom.Session) {
		logger.Debug("zoom session finished",
			zap.Stringer("direction", s.Direction),
			zap.Int("ticks", s.Tick),
		)
		SaveCurrentView(e)
	}
	return nil
}

func getCamera(e *ecs.ECS) (*components.CameraData, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Camera.Get(cameraEntry), true
}

// CurrentScene returns the loaded scene, or nil while loading.
func CurrentScene(e *ecs.ECS) *scene.Scene {
	entry, ok := components.MapScene.First(e.World)
	if !ok {
		return nil
	}
	return components.MapScene.Get(entry).Current
}

// CurrentLevel returns the camera's zoom level in the loaded scene.
func CurrentLevel(e *ecs.ECS) (float64, bool) {
	camera, ok := getCamera(e)
	sc := CurrentScene(e)
	if !ok || sc == nil {
		return 0, false
	}
	return sc.Level(camera.Zoom), true
}

// UpdateCamera keeps the viewport sized to the screen and applies keyboard
// pan, mouse drag and the reset key.
func UpdateCamera(e *ecs.ECS) {
	camera, ok := getCamera(e)
	if !ok {
		return
	}
	camera.SetScreen(float64(config.C.Width), float64(config.C.Height))

	input := GetInput(e)
	if input == nil {
		return
	}

	if input.JustPressedAction(config.ActionResetView) {
		ResetView(e)
		return
	}

	var dx, dy float64
	speed := config.Camera.PanSpeed
	if input.Current[config.ActionPanLeft] {
		dx += speed
	}
	if input.Current[config.ActionPanRight] {
		dx -= speed
	}
	if input.Current[config.ActionPanUp] {
		dy += speed
	}
	if input.Current[config.ActionPanDown] {
		dy -= speed
	}
	if input.Pressed && input.Dragged && !input.OverUI {
		dx += input.DragDelta.X
		dy += input.DragDelta.Y
	}
	if dx == 0 && dy == 0 {
		return
	}

	// Manual movement overrides an animated LookAt
	StopFlyTo(e)
	camera.Pan(dx, dy)
}

// ResetView flies back to the scheme's initial center and level.
func ResetView(e *ecs.ECS) {
	sc := CurrentScene(e)
	if sc == nil {
		return
	}
	StartFlyTo(e, sc.ToScene(sc.Scheme.CenterLatLng()), sc.Scheme.Level, sc.Scheme.Name)
}
