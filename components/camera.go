package components

import (
	"github.com/automoto/zoomview/shared/viewport"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	viewport.Viewport
}

var Camera = donburi.NewComponentType[CameraData]()
