package scene

import (
	"context"
	"fmt"
	"image"
	"io/fs"
	stdmath "math"

	"github.com/automoto/zoomview/shared/geo"
	"github.com/golang/geo/s2"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
	"github.com/yohamta/donburi/features/math"
	"golang.org/x/sync/errgroup"
)

// MarkerGroup is the Tiled object group read as markers.
const MarkerGroup = "Markers"

type Marker struct {
	Name   string
	LatLng s2.LatLng
	Pos    math.Vec2 // Scene pixels at the base level
}

// Scene is a loaded scheme. Scene pixels are Web Mercator pixels at
// BaseLevel, offset so that Origin is (0,0).
type Scene struct {
	Scheme  Scheme
	Origin  math.Vec2 // Global pixel of the scene's top-left corner
	Width   float64
	Height  float64
	Image   image.Image // Rendered Tiled map; nil draws the tile grid
	Markers []Marker
}

// ToScene converts a coordinate to scene pixels.
func (s *Scene) ToScene(ll s2.LatLng) math.Vec2 {
	p := geo.Project(ll, s.Scheme.BaseLevel)
	return math.Vec2{X: p.X - s.Origin.X, Y: p.Y - s.Origin.Y}
}

// ToLatLng converts scene pixels to a coordinate.
func (s *Scene) ToLatLng(p math.Vec2) s2.LatLng {
	return geo.Unproject(math.Vec2{X: p.X + s.Origin.X, Y: p.Y + s.Origin.Y}, s.Scheme.BaseLevel)
}

// Level converts a viewport scale into a zoom level.
func (s *Scene) Level(scale float64) float64 {
	return geo.ScaleToLevel(scale, s.Scheme.BaseLevel)
}

// Scale converts a zoom level into a viewport scale.
func (s *Scene) Scale(level float64) float64 {
	return geo.LevelToScale(level, s.Scheme.BaseLevel)
}

// Load builds the scene for scheme. Map paths are resolved in fsys.
func Load(fsys fs.FS, scheme Scheme) (*Scene, error) {
	if err := scheme.Validate(); err != nil {
		return nil, err
	}
	center := geo.Project(scheme.CenterLatLng(), scheme.BaseLevel)

	sc := &Scene{Scheme: scheme}
	var tmxMarkers []Marker
	if scheme.Map != "" {
		var err error
		tmxMarkers, err = sc.loadTiled(fsys, scheme.Map)
		if err != nil {
			return nil, err
		}
	} else {
		sc.Width = float64(scheme.Extent)
		sc.Height = float64(scheme.Extent)
	}
	sc.Origin = math.Vec2{X: stdmath.Round(center.X - sc.Width/2), Y: stdmath.Round(center.Y - sc.Height/2)}

	for _, spec := range scheme.Markers {
		ll, _ := geo.ParseLatLng(spec.At)
		sc.Markers = append(sc.Markers, Marker{Name: spec.Name, LatLng: ll, Pos: sc.ToScene(ll)})
	}
	for _, mk := range tmxMarkers {
		mk.LatLng = sc.ToLatLng(mk.Pos)
		sc.Markers = append(sc.Markers, mk)
	}
	return sc, nil
}

func (sc *Scene) loadTiled(fsys fs.FS, path string) ([]Marker, error) {
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}
	sc.Width = float64(m.Width * m.TileWidth)
	sc.Height = float64(m.Height * m.TileHeight)

	var markers []Marker
	for _, og := range m.ObjectGroups {
		if og.Name != MarkerGroup {
			continue
		}
		for _, o := range og.Objects {
			markers = append(markers, Marker{Name: o.Name, Pos: math.Vec2{X: o.X, Y: o.Y}})
		}
	}

	if len(m.Layers) == 0 {
		return markers, nil
	}
	renderer, err := render.NewRendererWithFileSystem(m, fsys)
	if err != nil {
		return nil, fmt.Errorf("create renderer for %s: %w", path, err)
	}
	if err := renderer.RenderVisibleLayers(); err != nil {
		return nil, fmt.Errorf("render %s: %w", path, err)
	}
	sc.Image = renderer.Result
	return markers, nil
}

// LoadAll loads every scheme of the manifest concurrently, at most limit at
// a time. The first error cancels the rest.
func LoadAll(ctx context.Context, fsys fs.FS, m *Manifest, limit int) (map[string]*Scene, error) {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	scenes := make([]*Scene, len(m.Schemes))
	for i, scheme := range m.Schemes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sc, err := Load(fsys, scheme)
			if err != nil {
				return fmt.Errorf("scheme %q: %w", scheme.Name, err)
			}
			scenes[i] = sc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]*Scene, len(scenes))
	for _, sc := range scenes {
		out[sc.Scheme.Name] = sc
	}
	return out, nil
}
