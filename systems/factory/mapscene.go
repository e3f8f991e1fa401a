package factory

import (
	stdmath "math"

	"github.com/automoto/zoomview/archetypes"
	"github.com/automoto/zoomview/assets"
	"github.com/automoto/zoomview/components"
	"github.com/automoto/zoomview/config"
	"github.com/automoto/zoomview/shared/scene"
	"github.com/automoto/zoomview/shared/viewport"
	"github.com/automoto/zoomview/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

const spaceCellSize = 64

// CreateMapScene spawns the entity tracking the loaded scheme.
func CreateMapScene(ecs *ecs.ECS, manifest *assets.Manifest, log *zap.Logger) *donburi.Entry {
	mapScene := archetypes.MapScene.Spawn(ecs)
	components.MapScene.Set(mapScene, &components.MapSceneData{
		Manifest: manifest,
		Loader:   scene.NewLoader(manifest.FS, log),
		Images:   assets.NewImageCache(),
	})
	return mapScene
}

// PopulateScene creates the hit-test space and markers of sc and fits the
// camera to it: world bounds, zoom limits and the scheme's initial view.
func PopulateScene(ecs *ecs.ECS, sc *scene.Scene, camera *components.CameraData) {
	ClearScene(ecs)

	w := int(stdmath.Ceil(sc.Width))
	h := int(stdmath.Ceil(sc.Height))
	spaceEntry := CreateSpace(ecs, w, h, spaceCellSize, spaceCellSize)
	space := components.Space.Get(spaceEntry)
	for _, m := range sc.Markers {
		CreateMarker(ecs, space, m)
	}

	if camera == nil {
		return
	}
	camera.World = viewport.Rect{W: sc.Width, H: sc.Height}
	lo, hi := LevelLimits(sc.Scheme)
	camera.MinZoom = sc.Scale(lo)
	camera.MaxZoom = sc.Scale(hi)
	camera.LookAt(sc.ToScene(sc.Scheme.CenterLatLng()), sc.Scale(sc.Scheme.Level))
}

// LevelLimits narrows the scheme's level range to the configured camera
// range. An empty intersection collapses to the lower bound.
func LevelLimits(s scene.Scheme) (lo, hi float64) {
	lo = stdmath.Max(s.MinLevel, config.Camera.MinLevel)
	hi = stdmath.Min(s.MaxLevel, config.Camera.MaxLevel)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// ClearScene removes the markers and hit-test space of the previous scene.
func ClearScene(ecs *ecs.ECS) {
	var stale []donburi.Entity
	tags.Marker.Each(ecs.World, func(e *donburi.Entry) {
		stale = append(stale, e.Entity())
	})
	components.Space.Each(ecs.World, func(e *donburi.Entry) {
		stale = append(stale, e.Entity())
	})
	for _, entity := range stale {
		ecs.World.Remove(entity)
	}
}
