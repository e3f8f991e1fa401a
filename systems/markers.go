package systems

import (
	stdmath "math"

	"github.com/automoto/zoomview/components"
	cfg "github.com/automoto/zoomview/config"
	"github.com/automoto/zoomview/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateMarkers hovers the marker under the cursor and flies to it on click.
func UpdateMarkers(e *ecs.ECS) {
	tags.Marker.Each(e.World, func(entry *donburi.Entry) {
		components.Marker.Get(entry).Hover = false
	})

	input := GetInput(e)
	camera, ok := getCamera(e)
	if input == nil || !ok || input.OverUI {
		return
	}
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	hit := MarkerAt(space, camera.ScreenToWorld(input.Cursor), cfg.Marker.Radius/camera.Zoom)
	if hit == nil {
		return
	}
	marker := components.Marker.Get(hit)
	marker.Hover = true

	if input.JustReleased && !input.Dragged {
		StartFlyTo(e, marker.Pos, cfg.Marker.FlyLevel, marker.Name)
	}
}

// MarkerAt returns the marker entry closest to p within radius scene
// pixels, or nil.
func MarkerAt(space *components.SpaceData, p math.Vec2, radius float64) *donburi.Entry {
	if space == nil || space.Probe == nil {
		return nil
	}
	if radius < 0.5 {
		radius = 0.5
	}
	probe := space.Probe
	probe.X, probe.Y = p.X-radius, p.Y-radius
	probe.W, probe.H = radius*2, radius*2
	probe.Update()

	check := probe.Check(0, 0, tags.ResolvMarker)
	if check == nil {
		return nil
	}

	var best *donburi.Entry
	bestDist := stdmath.Inf(1)
	for _, obj := range check.ObjectsByTags(tags.ResolvMarker) {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		d := distance(p, components.Marker.Get(entry).Pos)
		if d <= radius && d < bestDist {
			best, bestDist = entry, d
		}
	}
	return best
}
