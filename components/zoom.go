package components

import (
	"github.com/automoto/zoomview/shared/zoom"
	"github.com/yohamta/donburi"
)

// ZoomData owns the gesture zoom animator of a camera and the per-frame
// scheduler that drives it.
type ZoomData struct {
	Animator *zoom.Animator
	Frames   *zoom.FrameScheduler
	Sessions int // Sessions started since the scene was created
}

var Zoom = donburi.NewComponentType[ZoomData]()
