package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlyToData animates the camera toward a target center and zoom. The
// tweens run in world pixels and log2 zoom so that the motion looks even
// at every scale.
type FlyToData struct {
	X, Y   *gween.Tween
	Level  *gween.Tween
	Active bool
	Label  string // What the camera is flying to, for the HUD
}

var FlyTo = donburi.NewComponentType[FlyToData]()
