package tags

import "github.com/yohamta/donburi"

var (
	Marker = donburi.NewTag().SetName("Marker")
)

// Resolv tags for hit testing
const (
	ResolvMarker = "marker"
	ResolvProbe  = "probe"
)
