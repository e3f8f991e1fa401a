package systems

import (
	"encoding/json"
	"fmt"

	"github.com/golang/geo/s2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

const viewItem = "view"

// SavedView is the last camera position stored on disk
type SavedView struct {
	Scheme string  `json:"scheme"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Level  float64 `json:"level"`
}

// ItemStore is the subset of gdata.Manager used for persistence.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store ItemStore

// InitPersistence opens the gdata store used for the saved view
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		logger.Warn("could not initialize persistence", zap.Error(err))
		return err
	}
	store = m
	return nil
}

// SetStore replaces the persistence backend. nil disables persistence.
func SetStore(s ItemStore) {
	store = s
}

// LoadView returns the saved view, or nil when none was stored
func LoadView() (*SavedView, error) {
	if store == nil {
		return nil, nil
	}
	data, err := store.LoadItem(viewItem)
	if err != nil {
		logger.Warn("could not load view", zap.Error(err))
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var v SavedView
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parse saved view: %w", err)
	}
	return &v, nil
}

// SaveView writes v to disk
func SaveView(v *SavedView) error {
	if store == nil || v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serialize view: %w", err)
	}
	if err := store.SaveItem(viewItem, data); err != nil {
		logger.Warn("could not save view", zap.Error(err))
		return err
	}
	return nil
}

// CurrentView captures the camera of the loaded scene.
func CurrentView(e *ecs.ECS) (*SavedView, bool) {
	camera, ok := getCamera(e)
	sc := CurrentScene(e)
	if !ok || sc == nil {
		return nil, false
	}
	ll := sc.ToLatLng(camera.Center)
	return &SavedView{
		Scheme: sc.Scheme.Name,
		Lat:    ll.Lat.Degrees(),
		Lng:    ll.Lng.Degrees(),
		Level:  sc.Level(camera.Zoom),
	}, true
}

// SaveCurrentView stores the camera of the loaded scene.
func SaveCurrentView(e *ecs.ECS) {
	if v, ok := CurrentView(e); ok {
		_ = SaveView(v)
	}
}

// ApplySavedView moves the camera to v when it belongs to the loaded
// scheme. It reports whether the view was applied.
func ApplySavedView(e *ecs.ECS, v *SavedView) bool {
	camera, ok := getCamera(e)
	sc := CurrentScene(e)
	if !ok || sc == nil || v == nil || v.Scheme != sc.Scheme.Name {
		return false
	}
	center := sc.ToScene(s2.LatLngFromDegrees(v.Lat, v.Lng))
	camera.LookAt(center, sc.Scale(v.Level))
	return true
}
