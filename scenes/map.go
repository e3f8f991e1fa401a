package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/automoto/zoomview/assets"
	"github.com/automoto/zoomview/components"
	cfg "github.com/automoto/zoomview/config"
	"github.com/automoto/zoomview/shared/zoom"
	"github.com/automoto/zoomview/systems"
	"github.com/automoto/zoomview/systems/factory"
	"github.com/automoto/zoomview/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// MapScene shows one map scheme with gesture zoom, pan and markers.
type MapScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	manifest     *assets.Manifest
	log          *zap.Logger
	controls     *ui.ZoomControls
	once         sync.Once
	err          error // Set when the scene could not be configured
}

func NewMapScene(sc SceneChanger, manifest *assets.Manifest, log *zap.Logger) *MapScene {
	if log == nil {
		log = zap.NewNop()
	}
	return &MapScene{sceneChanger: sc, manifest: manifest, log: log}
}

func (ms *MapScene) Update() {
	ms.once.Do(ms.configure)
	if ms.ecs == nil {
		return
	}

	ms.controls.UI.Update()
	ms.ecs.Update()

	if entry, ok := components.MapScene.First(ms.ecs.World); ok {
		ms.controls.SetScheme(components.MapScene.Get(entry).Scheme)
	}
}

func (ms *MapScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		if ms.err != nil {
			systems.DrawMessage(screen, ms.err.Error())
		}
		return
	}
	ms.ecs.Draw(screen)
	ms.controls.UI.Draw(screen)
}

// Close saves the current view and waits for pending loads.
func (ms *MapScene) Close() {
	if ms.ecs == nil {
		return
	}
	systems.SaveCurrentView(ms.ecs)
	if entry, ok := components.MapScene.First(ms.ecs.World); ok {
		md := components.MapScene.Get(entry)
		md.Loader.Wait()
		md.Images.Release()
	}
}

// Err returns the error that kept the scene from starting, if any.
func (ms *MapScene) Err() error {
	return ms.err
}

func (ms *MapScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	factory.CreateMapScene(ecs, ms.manifest, ms.log)
	if err := systems.SpawnCamera(ecs); err != nil {
		ms.fail("could not create camera", err)
		return
	}

	controls, err := ui.NewZoomControls(
		func() { systems.StartZoom(ecs, zoom.In, systems.ScreenCenter()) },
		func() { systems.StartZoom(ecs, zoom.Out, systems.ScreenCenter()) },
		func() { systems.ResetView(ecs) },
		func() { systems.NextScheme(ecs) },
	)
	if err != nil {
		ms.fail("could not build zoom controls", err)
		return
	}
	ms.controls = controls

	// Input first; everything else reads it
	ecs.AddSystem(systems.UpdateInputWithOverlay(controls.Contains))
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateMapScene)
	ecs.AddSystem(systems.UpdateMarkers)
	ecs.AddSystem(systems.UpdateZoomGestures)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateFlyTo)
	// Drives the zoom animator; must follow everything that starts sessions
	ecs.AddSystem(systems.UpdateZoomFrames)

	ecs.AddRenderer(cfg.Default, systems.DrawMap)
	ecs.AddRenderer(cfg.Default, systems.DrawMarkers)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)
	ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)

	if err := systems.LoadScheme(ecs, cfg.Scene.Scheme); err != nil {
		ms.log.Error("could not load scheme", zap.String("scheme", cfg.Scene.Scheme), zap.Error(err))
	}

	ms.ecs = ecs
}

func (ms *MapScene) fail(msg string, err error) {
	ms.log.Error(msg, zap.Error(err))
	ms.err = fmt.Errorf("%s: %w", msg, err)
}
