package geo

import (
	"testing"

	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func TestProjectKnownPoints(t *testing.T) {
	p := Project(s2.LatLngFromDegrees(0, 0), 0)
	assert.InDelta(t, 128, p.X, 1e-9)
	assert.InDelta(t, 128, p.Y, 1e-9)

	nw := Project(s2.LatLngFromDegrees(MaxLatitude, -180), 1)
	assert.InDelta(t, 0, nw.X, 1e-9)
	assert.InDelta(t, 0, nw.Y, 1e-3)

	mid := Project(s2.LatLngFromDegrees(45, 90), 0)
	assert.InDelta(t, 192, mid.X, 1e-9)
	assert.InDelta(t, 92.0898, mid.Y, 1e-3)

	// latitudes beyond the mercator limit are clamped
	pole := Project(s2.LatLngFromDegrees(90, 0), 0)
	assert.InDelta(t, 0, pole.Y, 1e-3)
}

func TestProjectUnprojectRoundTrip(t *testing.T) {
	tests := []struct {
		lat, lng, level float64
	}{
		{52.530932, 13.384915, 14},
		{-33.8688, 151.2093, 3},
		{0, 0, 0},
		{64.1466, -21.9426, 9.5},
	}
	for _, tt := range tests {
		ll := s2.LatLngFromDegrees(tt.lat, tt.lng)
		got := Unproject(Project(ll, tt.level), tt.level)
		assert.InDelta(t, tt.lat, got.Lat.Degrees(), 1e-9)
		assert.InDelta(t, tt.lng, got.Lng.Degrees(), 1e-9)
	}
}

func TestLevelScaleConversions(t *testing.T) {
	assert.InDelta(t, 14, ScaleToLevel(1, 14), 1e-12)
	assert.InDelta(t, 15, ScaleToLevel(2, 14), 1e-12)
	assert.InDelta(t, 13, ScaleToLevel(0.5, 14), 1e-12)
	assert.InDelta(t, 14, ScaleToLevel(0, 14), 1e-12)
	assert.InDelta(t, 4, LevelToScale(16, 14), 1e-12)
	assert.InDelta(t, 512, WorldSize(1), 1e-12)
}

func TestMetersPerPixel(t *testing.T) {
	assert.InDelta(t, 156543.03, MetersPerPixel(0, 0), 0.01)
	assert.InDelta(t, 156543.03/2, MetersPerPixel(60, 0), 0.01)
	assert.InDelta(t, 9.5546, MetersPerPixel(0, 14), 1e-3)
}

func TestDistance(t *testing.T) {
	berlin := s2.LatLngFromDegrees(52.5200, 13.4050)
	paris := s2.LatLngFromDegrees(48.8566, 2.3522)
	assert.InDelta(t, 878_000, Distance(berlin, paris), 5_000)
	assert.Zero(t, Distance(berlin, berlin))
}

func TestParseLatLng(t *testing.T) {
	ll, err := ParseLatLng(" 52.53 , 13.38 ")
	require.NoError(t, err)
	assert.InDelta(t, 52.53, ll.Lat.Degrees(), 1e-9)
	assert.InDelta(t, 13.38, ll.Lng.Degrees(), 1e-9)
	assert.Equal(t, "52.530000,13.380000", FormatLatLng(ll))

	for _, bad := range []string{"", "1", "a,b", "1,b", "95,0", "0,200", "1,2,3"} {
		_, err := ParseLatLng(bad)
		assert.ErrorIs(t, err, ErrInvalidCoordinate, bad)
	}
}

func TestUnprojectCenterOfWorld(t *testing.T) {
	ll := Unproject(math.Vec2{X: WorldSize(5) / 2, Y: WorldSize(5) / 2}, 5)
	assert.InDelta(t, 0, ll.Lat.Degrees(), 1e-9)
	assert.InDelta(t, 0, ll.Lng.Degrees(), 1e-9)
}
