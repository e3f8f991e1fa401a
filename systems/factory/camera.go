package factory

import (
	"github.com/automoto/zoomview/archetypes"
	"github.com/automoto/zoomview/components"
	"github.com/automoto/zoomview/config"
	"github.com/automoto/zoomview/shared/viewport"
	"github.com/automoto/zoomview/shared/zoom"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the map camera together with its zoom animator. cam
// is what the animator scales; frames drive it once per Update.
func CreateCamera(ecs *ecs.ECS, cam zoom.Camera) (*donburi.Entry, error) {
	frames := zoom.NewFrameScheduler()
	animator, err := zoom.NewAnimator(cam, frames, config.Zoom.Animation)
	if err != nil {
		return nil, err
	}

	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Viewport: viewport.New(float64(config.C.Width), float64(config.C.Height)),
	})
	components.Zoom.Set(camera, &components.ZoomData{
		Animator: animator,
		Frames:   frames,
	})
	components.FlyTo.Set(camera, &components.FlyToData{})
	return camera, nil
}
