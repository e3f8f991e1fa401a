package systems

import (
	"github.com/automoto/zoomview/components"
	"github.com/automoto/zoomview/config"
	"github.com/automoto/zoomview/shared/gesture"
	"github.com/automoto/zoomview/shared/zoom"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func getZoom(e *ecs.ECS) (*components.ZoomData, bool) {
	entry, ok := components.Zoom.First(e.World)
	if !ok {
		return nil, false
	}
	zd := components.Zoom.Get(entry)
	if zd.Animator == nil {
		return nil, false
	}
	return zd, true
}

// StartZoom begins a gesture zoom session toward dir around a screen
// point. Any running session or fly-to is replaced.
func StartZoom(e *ecs.ECS, dir zoom.Direction, origin math.Vec2) bool {
	zd, ok := getZoom(e)
	if !ok {
		return false
	}
	StopFlyTo(e)
	if dir == zoom.Out {
		zd.Animator.ZoomOut(origin)
	} else {
		zd.Animator.ZoomIn(origin)
	}
	zd.Sessions++
	return true
}

// StopZoom cancels the running zoom session, if any.
func StopZoom(e *ecs.ECS) {
	if zd, ok := getZoom(e); ok {
		zd.Animator.Stop()
	}
}

// ScreenCenter is the zoom origin for keys and buttons.
func ScreenCenter() math.Vec2 {
	return math.Vec2{X: float64(config.C.Width) / 2, Y: float64(config.C.Height) / 2}
}

// UpdateZoomGestures turns recognised gestures and zoom keys into zoom
// sessions.
func UpdateZoomGestures(e *ecs.ECS) {
	input := GetInput(e)
	if input == nil {
		return
	}

	switch input.Gesture.Kind {
	case gesture.ZoomIn:
		StartZoom(e, zoom.In, input.Gesture.Origin)
		return
	case gesture.ZoomOut:
		StartZoom(e, zoom.Out, input.Gesture.Origin)
		return
	}

	if input.JustPressedAction(config.ActionZoomIn) {
		StartZoom(e, zoom.In, ScreenCenter())
	} else if input.JustPressedAction(config.ActionZoomOut) {
		StartZoom(e, zoom.Out, ScreenCenter())
	}
}

// UpdateZoomFrames advances the per-frame scheduler that drives the
// animator. Must run once per Update.
func UpdateZoomFrames(e *ecs.ECS) {
	entry, ok := components.Zoom.First(e.World)
	if !ok {
		return
	}
	zd := components.Zoom.Get(entry)
	if zd.Frames != nil {
		zd.Frames.Advance()
	}
}
