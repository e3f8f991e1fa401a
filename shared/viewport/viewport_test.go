package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

func assertVec(t *testing.T, want, got math.Vec2) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-9, "y")
}

func TestScreenWorldRoundTrip(t *testing.T) {
	v := New(640, 480)
	v.Center = math.Vec2{X: 1000, Y: 500}
	v.Zoom = 2.5

	p := math.Vec2{X: 17, Y: 333}
	assertVec(t, p, v.WorldToScreen(v.ScreenToWorld(p)))
	assertVec(t, math.Vec2{X: 320, Y: 240}, v.WorldToScreen(v.Center))
}

func TestZoomByKeepsOriginFixed(t *testing.T) {
	tests := []struct {
		name   string
		factor float64
		origin math.Vec2
	}{
		{"zoom in at corner", 1.1, math.Vec2{X: 0, Y: 0}},
		{"zoom out off center", 0.9, math.Vec2{X: 500, Y: 100}},
		{"zoom in at center", 2, math.Vec2{X: 320, Y: 240}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(640, 480)
			v.Center = math.Vec2{X: 200, Y: 300}
			before := v.ScreenToWorld(tt.origin)

			v.ZoomBy(tt.factor, tt.origin)

			assert.InDelta(t, tt.factor, v.Zoom, 1e-12)
			assertVec(t, before, v.ScreenToWorld(tt.origin))
		})
	}
}

func TestZoomByClampsAndIgnoresBadFactors(t *testing.T) {
	v := New(100, 100)
	v.MinZoom, v.MaxZoom = 0.5, 4

	v.ZoomBy(100, math.Vec2{})
	assert.Equal(t, 4.0, v.Zoom)
	v.ZoomBy(0.0001, math.Vec2{})
	assert.Equal(t, 0.5, v.Zoom)

	v.ZoomBy(0, math.Vec2{})
	v.ZoomBy(-2, math.Vec2{})
	assert.Equal(t, 0.5, v.Zoom)
}

func TestPanAndVisible(t *testing.T) {
	v := New(200, 100)
	v.Zoom = 2
	v.Pan(20, -10)

	assertVec(t, math.Vec2{X: -10, Y: 5}, v.Center)
	assert.Equal(t, Rect{X: -60, Y: -20, W: 100, H: 50}, v.Visible())
}

func TestClampToWorld(t *testing.T) {
	v := New(200, 100)
	v.World = Rect{W: 1000, H: 1000}

	v.LookAt(math.Vec2{X: -50, Y: 2000}, 1)
	assertVec(t, math.Vec2{X: 100, Y: 950}, v.Center)

	// world narrower than the screen: centered
	v.LookAt(math.Vec2{X: 10, Y: 10}, 0.1)
	assertVec(t, math.Vec2{X: 500, Y: 500}, v.Center)

	v.World = Rect{X: 100, Y: -200, W: 400, H: 400}
	v.LookAt(math.Vec2{X: 10, Y: 10}, 0.1)
	assertVec(t, math.Vec2{X: 300, Y: 0}, v.Center)
}

func TestRect(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.True(t, r.Contains(math.Vec2{X: 5, Y: 5}))
	assert.False(t, r.Contains(math.Vec2{X: 11, Y: 5}))
	assert.True(t, r.Intersects(Rect{X: 9, Y: 9, W: 5, H: 5}))
	assert.False(t, r.Intersects(Rect{X: 10, Y: 0, W: 5, H: 5}))
	assert.True(t, Rect{}.Empty())
	assertVec(t, math.Vec2{X: 5, Y: 5}, r.Center())
}

func TestParsePoint(t *testing.T) {
	p, err := ParsePoint("480, 320.5")
	assert.NoError(t, err)
	assertVec(t, math.Vec2{X: 480, Y: 320.5}, p)

	for _, bad := range []string{"", "480", "x,1", "1,y"} {
		_, err := ParsePoint(bad)
		assert.ErrorIs(t, err, ErrInvalidPoint, bad)
	}
}
