package zoom

import (
	stdmath "math"

	"github.com/yohamta/donburi/features/math"
)

// LevelController is a camera that can only set an absolute zoom level,
// where each level doubles the scale.
type LevelController interface {
	ZoomLevel() float64
	SetZoomLevel(level float64)
}

// LevelCamera adapts a LevelController to Camera. The origin is ignored.
type LevelCamera struct {
	Controller LevelController
}

func (c LevelCamera) ZoomBy(factor float64, _ math.Vec2) {
	if !isPositive(factor) {
		return
	}
	c.Controller.SetZoomLevel(c.Controller.ZoomLevel() + stdmath.Log2(factor))
}
