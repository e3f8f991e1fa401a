package components

import (
	"github.com/automoto/zoomview/assets"
	"github.com/automoto/zoomview/shared/scene"
	"github.com/yohamta/donburi"
)

// MapSceneData holds the loaded map scheme and the loader delivering it.
type MapSceneData struct {
	Manifest *assets.Manifest
	Loader   *scene.Loader
	Images   *assets.ImageCache
	Scheme   string
	Current  *scene.Scene
	Loading  bool
	Err      error
}

var MapScene = donburi.NewComponentType[MapSceneData]()
