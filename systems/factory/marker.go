package factory

import (
	"github.com/automoto/zoomview/archetypes"
	"github.com/automoto/zoomview/components"
	"github.com/automoto/zoomview/shared/scene"
	"github.com/automoto/zoomview/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMarker spawns a marker and registers it in space for hit tests.
func CreateMarker(ecs *ecs.ECS, space *components.SpaceData, m scene.Marker) *donburi.Entry {
	marker := archetypes.Marker.Spawn(ecs)

	obj := resolv.NewObject(m.Pos.X, m.Pos.Y, 1, 1, tags.ResolvMarker)
	obj.Data = marker
	if space != nil {
		space.Add(obj)
	}

	components.Marker.Set(marker, &components.MarkerData{
		Name:   m.Name,
		LatLng: m.LatLng,
		Pos:    m.Pos,
		Object: obj,
	})
	return marker
}
