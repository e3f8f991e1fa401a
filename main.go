package main

import (
	"image"
	"os"

	"github.com/automoto/zoomview/assets"
	"github.com/automoto/zoomview/config"
	"github.com/automoto/zoomview/fonts"
	"github.com/automoto/zoomview/scenes"
	"github.com/automoto/zoomview/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// closer is implemented by scenes holding state worth saving on exit
type closer interface {
	Close()
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.closeScene()
	g.scene = scene.(Scene)
}

func (g *Game) closeScene() {
	if c, ok := g.scene.(closer); ok {
		c.Close()
	}
}

func NewGame(manifest *assets.Manifest, log *zap.Logger) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewMapScene(g, manifest, log)
	return g
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.closeScene()
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func runViewer(log *zap.Logger) error {
	if err := fonts.LoadDefaults(); err != nil {
		return err
	}
	manifest, err := assets.LoadManifest(config.Scene.Manifest)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence for the saved view
	if err := systems.InitPersistence("zoomview"); err != nil {
		log.Warn("running without a saved view", zap.Error(err))
	}

	log.Info("starting viewer",
		zap.Int("width", config.C.Width),
		zap.Int("height", config.C.Height),
		zap.Int("tps", config.C.TPS),
		zap.Strings("schemes", manifest.Names()),
	)
	return ebiten.RunGame(NewGame(manifest, log))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
