package systems

import (
	"github.com/automoto/zoomview/components"
	cfg "github.com/automoto/zoomview/config"
	"github.com/automoto/zoomview/shared/scene"
	"github.com/automoto/zoomview/systems/factory"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

func getMapScene(e *ecs.ECS) (*components.MapSceneData, bool) {
	entry, ok := components.MapScene.First(e.World)
	if !ok {
		return nil, false
	}
	return components.MapScene.Get(entry), true
}

// LoadScheme starts loading a scheme by name; empty selects the first one.
// The previous scene stays on screen until the new one arrives.
func LoadScheme(e *ecs.ECS, name string) error {
	md, ok := getMapScene(e)
	if !ok {
		return nil
	}
	scheme, err := md.Manifest.Scheme(name)
	if err != nil {
		md.Err = err
		return err
	}

	md.Scheme = scheme.Name
	md.Loading = true
	md.Err = nil
	md.Loader.LoadSceneAsync(scheme, func(sc *scene.Scene, err error) {
		onSceneLoaded(e, scheme.Name, sc, err)
	})
	return nil
}

func onSceneLoaded(e *ecs.ECS, name string, sc *scene.Scene, err error) {
	md, ok := getMapScene(e)
	if !ok || md.Scheme != name {
		// superseded by a later LoadScheme
		return
	}
	md.Loading = false
	if err != nil {
		md.Err = err
		logger.Error("could not load scheme", zap.String("scheme", name), zap.Error(err))
		return
	}

	StopZoom(e)
	StopFlyTo(e)
	if md.Current != nil {
		SaveCurrentView(e)
	}
	md.Current = sc

	camera, _ := getCamera(e)
	factory.PopulateScene(e, sc, camera)

	if v, err := LoadView(); err != nil {
		logger.Warn("ignoring saved view", zap.Error(err))
	} else if ApplySavedView(e, v) {
		logger.Debug("restored view", zap.String("scheme", v.Scheme), zap.Float64("level", v.Level))
	}
}

// NextScheme switches to the scheme after the current one.
func NextScheme(e *ecs.ECS) {
	md, ok := getMapScene(e)
	if !ok {
		return
	}
	next := md.Manifest.Next(md.Scheme)
	if next.Name == md.Scheme {
		return
	}
	_ = LoadScheme(e, next.Name)
}

// UpdateMapScene delivers finished loads and handles the scheme key.
func UpdateMapScene(e *ecs.ECS) {
	md, ok := getMapScene(e)
	if !ok {
		return
	}
	md.Loader.Poll()

	if input := GetInput(e); input != nil && input.JustPressedAction(cfg.ActionNextScheme) {
		NextScheme(e)
	}
}
