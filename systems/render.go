package systems

import (
	"image/color"
	stdmath "math"

	"github.com/automoto/zoomview/components"
	cfg "github.com/automoto/zoomview/config"
	"github.com/automoto/zoomview/fonts"
	"github.com/automoto/zoomview/shared/geo"
	"github.com/automoto/zoomview/shared/viewport"
	"github.com/automoto/zoomview/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

const (
	gridMinSpacing = 48  // Screen pixels
	gridMaxSpacing = 192 // Screen pixels
	gridMajorEvery = 4
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawMap renders the scene's map image, or its tile grid when the scheme
// has no Tiled map.
func DrawMap(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.MapGround)

	camera, ok := getCamera(ecs)
	if !ok {
		return
	}
	md, ok := getMapScene(ecs)
	if !ok || md.Current == nil {
		return
	}

	if img := md.Images.Image(md.Current); img != nil {
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.Filter = ebiten.FilterLinear
		drawOp.GeoM.Translate(-camera.Center.X, -camera.Center.Y)
		drawOp.GeoM.Scale(camera.Zoom, camera.Zoom)
		drawOp.GeoM.Translate(camera.Screen.X/2, camera.Screen.Y/2)
		screen.DrawImage(img, drawOp)
	} else {
		drawGrid(screen, camera)
	}

	// World border
	tl := camera.WorldToScreen(vecXY(0, 0))
	br := camera.WorldToScreen(vecXY(camera.World.W, camera.World.H))
	vector.StrokeRect(screen, float32(tl.X), float32(tl.Y), float32(br.X-tl.X), float32(br.Y-tl.Y), 2, cfg.MapGridMajor, false)
}

// GridSpacing returns the grid step in world pixels for a zoom: the tile
// size halved or doubled until lines are a comfortable distance apart.
func GridSpacing(zoom float64) float64 {
	step := float64(geo.TileSize)
	if !(zoom > 0) {
		return step
	}
	for step*zoom < gridMinSpacing {
		step *= 2
	}
	for step*zoom > gridMaxSpacing && step > 1 {
		step /= 2
	}
	return step
}

func drawGrid(screen *ebiten.Image, camera *components.CameraData) {
	vis := camera.Visible()
	world := camera.World
	if world.Empty() {
		world = vis
	}
	x0, x1 := stdmath.Max(vis.X, world.X), stdmath.Min(vis.X+vis.W, world.X+world.W)
	y0, y1 := stdmath.Max(vis.Y, world.Y), stdmath.Min(vis.Y+vis.H, world.Y+world.H)
	if x1 <= x0 || y1 <= y0 {
		return
	}

	step := GridSpacing(camera.Zoom)
	top := camera.WorldToScreen(vecXY(x0, y0))
	bottom := camera.WorldToScreen(vecXY(x1, y1))

	for x := stdmath.Ceil(x0/step) * step; x <= x1; x += step {
		sx := float32(camera.WorldToScreen(vecXY(x, 0)).X)
		c, w := gridStyle(x, step)
		vector.StrokeLine(screen, sx, float32(top.Y), sx, float32(bottom.Y), w, c, false)
	}
	for y := stdmath.Ceil(y0/step) * step; y <= y1; y += step {
		sy := float32(camera.WorldToScreen(vecXY(0, y)).Y)
		c, w := gridStyle(y, step)
		vector.StrokeLine(screen, float32(top.X), sy, float32(bottom.X), sy, w, c, false)
	}
}

func gridStyle(v, step float64) (clr color.RGBA, width float32) {
	if stdmath.Mod(stdmath.Round(v/step), gridMajorEvery) == 0 {
		return cfg.MapGridMajor, 2
	}
	return cfg.MapGrid, 1
}

// DrawMarkers renders the scene's markers with their names.
func DrawMarkers(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, ok := getCamera(ecs)
	if !ok {
		return
	}
	r := cfg.Marker.Radius
	bounds := viewport.Rect{X: -r, Y: -r, W: camera.Screen.X + 2*r, H: camera.Screen.Y + 2*r}
	face := fonts.Small.Get()

	tags.Marker.Each(ecs.World, func(e *donburi.Entry) {
		marker := components.Marker.Get(e)
		p := camera.WorldToScreen(marker.Pos)

		// Viewport culling
		if !bounds.Contains(p) {
			return
		}

		c := cfg.Marker.Color
		if marker.Hover {
			c = cfg.Marker.ActiveColor
		}
		vector.FillCircle(screen, float32(p.X), float32(p.Y), float32(r), c, true)
		vector.StrokeCircle(screen, float32(p.X), float32(p.Y), float32(r), 2, cfg.White, true)
		text.Draw(screen, marker.Name, face, int(p.X+r+4), int(p.Y+4), cfg.Marker.LabelColor)
	})
}

func vecXY(x, y float64) math.Vec2 {
	return math.Vec2{X: x, Y: y}
}
