package systems

import (
	"fmt"

	"github.com/automoto/zoomview/components"
	cfg "github.com/automoto/zoomview/config"
	"github.com/automoto/zoomview/fonts"
	"github.com/automoto/zoomview/shared/geo"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

const hudLineHeight = 16

// DrawHUD renders the zoom readout, cursor position and scale bar in the
// top-left corner, and the loading or error message centered.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	md, ok := getMapScene(ecs)
	if !ok {
		return
	}
	face := fonts.Regular.Get()
	height := screen.Bounds().Dy()

	switch {
	case md.Err != nil:
		DrawMessage(screen, fmt.Sprintf("could not load %s: %v", md.Scheme, md.Err))
	case md.Loading && md.Current == nil:
		DrawMessage(screen, fmt.Sprintf("loading %s...", md.Scheme))
	}

	if !GetOrCreateSettings(ecs).HUD || md.Current == nil {
		return
	}
	for i, line := range hudLines(ecs) {
		drawShadowed(screen, face, line, int(cfg.HUD.Margin), int(cfg.HUD.Margin)+(i+1)*hudLineHeight)
	}
	drawScaleBar(ecs, screen, face, height)
}

func hudLines(ecs *ecs.ECS) []string {
	sc := CurrentScene(ecs)
	camera, _ := getCamera(ecs)
	lines := []string{
		fmt.Sprintf("%s  level %.2f", sc.Scheme.Name, sc.Level(camera.Zoom)),
	}

	if zd, ok := getZoom(ecs); ok {
		s := zd.Animator.Session()
		if s.Active {
			lines = append(lines, fmt.Sprintf("zoom %s  v %.3f  tick %d/%d", s.Direction, s.Velocity, s.Tick, zd.Animator.TotalTicks()))
		} else {
			lines = append(lines, fmt.Sprintf("zoom %s", zd.Animator.State()))
		}
	}

	if cameraEntry, ok := components.Camera.First(ecs.World); ok {
		if fly := components.FlyTo.Get(cameraEntry); fly.Active {
			lines = append(lines, "flying to "+fly.Label)
		}
	}

	if input := GetInput(ecs); input != nil {
		ll := sc.ToLatLng(camera.ScreenToWorld(input.Cursor))
		lines = append(lines, geo.FormatLatLng(ll))
	}
	return lines
}

func drawScaleBar(ecs *ecs.ECS, screen *ebiten.Image, face font.Face, height int) {
	sc := CurrentScene(ecs)
	camera, _ := getCamera(ecs)
	center := sc.ToLatLng(camera.Center)
	level := sc.Level(camera.Zoom)

	meters, px := geo.ScaleBar(geo.MetersPerPixel(center.Lat.Degrees(), level), cfg.HUD.ScaleBarWidth)
	if px <= 0 {
		return
	}
	x := float32(cfg.HUD.Margin)
	y := float32(height) - float32(cfg.HUD.Margin) - 4
	c := cfg.HUD.ScaleBarColor
	vector.StrokeLine(screen, x, y, x+float32(px), y, 2, c, false)
	vector.StrokeLine(screen, x, y-6, x, y, 2, c, false)
	vector.StrokeLine(screen, x+float32(px), y-6, x+float32(px), y, 2, c, false)
	drawShadowed(screen, face, geo.FormatDistance(meters), int(x), int(y)-8)
}

func drawShadowed(screen *ebiten.Image, face font.Face, s string, x, y int) {
	text.Draw(screen, s, face, x+1, y+1, cfg.HUD.ShadowColor)
	text.Draw(screen, s, face, x, y, cfg.HUD.TextColor)
}

// DrawMessage draws s centered on screen in the HUD style.
func DrawMessage(screen *ebiten.Image, s string) {
	face := fonts.Regular.Get()
	bounds := text.BoundString(face, s)
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	drawShadowed(screen, face, s, x, screen.Bounds().Dy()/2)
}
