package factory

import (
	"github.com/automoto/zoomview/archetypes"
	"github.com/automoto/zoomview/components"
	"github.com/automoto/zoomview/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace spawns the hit-test space with its cursor probe.
func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	probe := resolv.NewObject(0, 0, 1, 1, tags.ResolvProbe)
	spaceData.Add(probe)
	components.Space.Set(space, &components.SpaceData{Space: spaceData, Probe: probe})
	return space
}
