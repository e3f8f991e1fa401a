package archetypes

import (
	"github.com/automoto/zoomview/components"
	cfg "github.com/automoto/zoomview/config"
	"github.com/automoto/zoomview/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Camera = newArchetype(
		components.Camera,
		components.Zoom,
		components.FlyTo,
	)
	MapScene = newArchetype(
		components.MapScene,
	)
	Space = newArchetype(
		components.Space,
	)
	Marker = newArchetype(
		tags.Marker,
		components.Marker,
	)
	Input = newArchetype(
		components.Input,
		components.Touch,
	)
	Settings = newArchetype(
		components.Settings,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
