package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/zoomview/components"
	"github.com/automoto/zoomview/fonts"
	"github.com/automoto/zoomview/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	camera, ok := getCamera(ecs)
	if !ok {
		return // No camera yet
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		vis := camera.Visible()

		for _, obj := range space.Objects() {
			// Cull objects outside viewport
			if obj.X+obj.W < vis.X || obj.X > vis.X+vis.W || obj.Y+obj.H < vis.Y || obj.Y > vis.Y+vis.H {
				continue
			}

			tl := camera.WorldToScreen(vecXY(obj.X, obj.Y))
			br := camera.WorldToScreen(vecXY(obj.X+obj.W, obj.Y+obj.H))

			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvProbe) {
				c = color.RGBA{0, 255, 0, 255} // Green
			} else if obj.HasTags(tags.ResolvMarker) {
				c = color.RGBA{255, 0, 255, 255} // Magenta
			}
			w, h := br.X-tl.X, br.Y-tl.Y
			if w < 3 {
				w, h = 3, 3
			}
			vector.StrokeRect(screen, float32(tl.X), float32(tl.Y), float32(w), float32(h), 1, c, false)
		}
	}

	lines := []string{
		fmt.Sprintf("TPS %.1f  FPS %.1f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		fmt.Sprintf("center %.1f,%.1f  zoom %.4f [%.4f, %.4f]", camera.Center.X, camera.Center.Y, camera.Zoom, camera.MinZoom, camera.MaxZoom),
	}
	if zd, ok := getZoom(ecs); ok {
		lines = append(lines, fmt.Sprintf("frame %d  scheduled %d  sessions %d", zd.Frames.Frame(), zd.Frames.Len(), zd.Sessions))
	}

	face := fonts.Small.Get()
	y := screen.Bounds().Dy() - 40 - len(lines)*hudLineHeight
	x := screen.Bounds().Dx() / 2
	for i, line := range lines {
		drawShadowed(screen, face, line, x, y+i*hudLineHeight)
	}
}
