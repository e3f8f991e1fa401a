// Package geo projects geographic coordinates onto the flat map world
// using spherical Web Mercator, the projection of slippy-map tiles.
package geo

import (
	"errors"
	"fmt"
	stdmath "math"
	"strconv"
	"strings"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s2"
	"github.com/yohamta/donburi/features/math"
)

const (
	TileSize     = 256
	MaxLatitude  = 85.05112878
	EarthRadiusM = 6378137.0

	// metersPerPixelAtLevel0 is the equatorial ground resolution at level 0.
	metersPerPixelAtLevel0 = 2 * stdmath.Pi * EarthRadiusM / TileSize
)

var ErrInvalidCoordinate = errors.New("geo: invalid coordinate")

// WorldSize returns the width (and height) in pixels of the whole world at
// a zoom level.
func WorldSize(level float64) float64 {
	return TileSize * stdmath.Exp2(level)
}

// mercator projects longitude and latitude into [-180, 180] units.
var mercator = s2.NewMercatorProjection(180)

// Project returns the world pixel of ll at a zoom level. (0,0) is the
// north-west corner of the world.
func Project(ll s2.LatLng, level float64) math.Vec2 {
	size := WorldSize(level)
	p := mercator.FromLatLng(s2.LatLngFromDegrees(clampLat(ll.Lat.Degrees()), ll.Lng.Degrees()))
	return math.Vec2{X: (p.X/360 + 0.5) * size, Y: (0.5 - p.Y/360) * size}
}

// Unproject is the inverse of Project.
func Unproject(p math.Vec2, level float64) s2.LatLng {
	size := WorldSize(level)
	return mercator.ToLatLng(r2.Point{X: (p.X/size - 0.5) * 360, Y: (0.5 - p.Y/size) * 360})
}

// ScaleToLevel converts a viewport scale relative to base into a zoom level.
func ScaleToLevel(scale, base float64) float64 {
	if scale <= 0 {
		return base
	}
	return base + stdmath.Log2(scale)
}

// LevelToScale converts a zoom level into a viewport scale relative to base.
func LevelToScale(level, base float64) float64 {
	return stdmath.Exp2(level - base)
}

// MetersPerPixel returns the ground resolution at a latitude and level.
func MetersPerPixel(lat, level float64) float64 {
	return metersPerPixelAtLevel0 * stdmath.Cos(clampLat(lat)*stdmath.Pi/180) / stdmath.Exp2(level)
}

// Distance returns the great-circle distance between a and b in meters.
func Distance(a, b s2.LatLng) float64 {
	return a.Distance(b).Radians() * EarthRadiusM
}

// ParseLatLng parses "lat,lng" in decimal degrees.
func ParseLatLng(s string) (s2.LatLng, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return s2.LatLng{}, fmt.Errorf("%w: %q: want \"lat,lng\"", ErrInvalidCoordinate, s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return s2.LatLng{}, fmt.Errorf("%w: latitude %q: %v", ErrInvalidCoordinate, parts[0], err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return s2.LatLng{}, fmt.Errorf("%w: longitude %q: %v", ErrInvalidCoordinate, parts[1], err)
	}
	ll := s2.LatLngFromDegrees(lat, lng)
	if !ll.IsValid() {
		return s2.LatLng{}, fmt.Errorf("%w: %q out of range", ErrInvalidCoordinate, s)
	}
	return ll, nil
}

// FormatLatLng is the inverse of ParseLatLng.
func FormatLatLng(ll s2.LatLng) string {
	return fmt.Sprintf("%.6f,%.6f", ll.Lat.Degrees(), ll.Lng.Degrees())
}

func clampLat(lat float64) float64 {
	return stdmath.Max(-MaxLatitude, stdmath.Min(MaxLatitude, lat))
}
