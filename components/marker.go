package components

import (
	"github.com/golang/geo/s2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type MarkerData struct {
	Name   string
	LatLng s2.LatLng
	Pos    math.Vec2 // Scene pixels
	Object *resolv.Object
	Hover  bool
}

var Marker = donburi.NewComponentType[MarkerData]()

// SpaceData is the resolv space used for marker hit tests, in scene pixels.
type SpaceData struct {
	*resolv.Space
	Probe *resolv.Object // Follows the cursor for hover tests
}

var Space = donburi.NewComponentType[SpaceData]()
