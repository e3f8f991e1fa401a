package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

var testConfig = Config{
	DoubleTapFrames:   10,
	DoubleTapDistance: 20,
	TwoFingerTapMax:   8,
	WheelThreshold:    0.1,
}

func idle(r *Recognizer, n int) {
	for i := 0; i < n; i++ {
		r.Update(Frame{})
	}
}

func TestDoubleTapZoomsIn(t *testing.T) {
	r := NewRecognizer(testConfig)
	p := math.Vec2{X: 100, Y: 100}

	assert.Equal(t, None, r.Update(Frame{Taps: []math.Vec2{p}}).Kind)
	idle(r, 5)
	g := r.Update(Frame{Taps: []math.Vec2{{X: 105, Y: 98}}})

	assert.Equal(t, ZoomIn, g.Kind)
	assert.Equal(t, math.Vec2{X: 105, Y: 98}, g.Origin)

	// a third tap starts a new pair
	assert.Equal(t, None, r.Update(Frame{Taps: []math.Vec2{p}}).Kind)
}

func TestSlowOrDistantTapsAreSingle(t *testing.T) {
	r := NewRecognizer(testConfig)
	p := math.Vec2{X: 100, Y: 100}

	r.Update(Frame{Taps: []math.Vec2{p}})
	idle(r, 20)
	assert.Equal(t, None, r.Update(Frame{Taps: []math.Vec2{p}}).Kind)

	assert.Equal(t, None, r.Update(Frame{Taps: []math.Vec2{{X: 300, Y: 100}}}).Kind)
}

func TestTwoFingerTapZoomsOut(t *testing.T) {
	r := NewRecognizer(testConfig)
	a, b := math.Vec2{X: 100, Y: 100}, math.Vec2{X: 200, Y: 300}

	r.Update(Frame{Touches: []math.Vec2{a, b}})
	r.Update(Frame{Touches: []math.Vec2{a, b}})
	// first finger lifts: its tap must not count as a single tap
	assert.Equal(t, None, r.Update(Frame{Touches: []math.Vec2{b}, Taps: []math.Vec2{a}}).Kind)
	g := r.Update(Frame{Taps: []math.Vec2{b}})

	assert.Equal(t, ZoomOut, g.Kind)
	assert.Equal(t, math.Vec2{X: 150, Y: 200}, g.Origin)
}

func TestLongOrThreeFingerTouchIsNotATap(t *testing.T) {
	r := NewRecognizer(testConfig)
	a, b, c := math.Vec2{X: 1}, math.Vec2{X: 2}, math.Vec2{X: 3}

	for i := 0; i < 20; i++ {
		r.Update(Frame{Touches: []math.Vec2{a, b}})
	}
	assert.Equal(t, None, r.Update(Frame{}).Kind)

	r.Update(Frame{Touches: []math.Vec2{a, b, c}})
	assert.Equal(t, None, r.Update(Frame{}).Kind)
}

func TestWheel(t *testing.T) {
	r := NewRecognizer(testConfig)
	cursor := math.Vec2{X: 40, Y: 60}

	assert.Equal(t, Gesture{Kind: ZoomIn, Origin: cursor}, r.Update(Frame{Wheel: 1, Cursor: cursor}))
	assert.Equal(t, Gesture{Kind: ZoomOut, Origin: cursor}, r.Update(Frame{Wheel: -0.5, Cursor: cursor}))
	assert.Equal(t, None, r.Update(Frame{Wheel: 0.05, Cursor: cursor}).Kind)
	assert.Equal(t, None, r.Update(Frame{}).Kind)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "zoom-in", ZoomIn.String())
	assert.Equal(t, "zoom-out", ZoomOut.String())
	assert.Equal(t, "none", None.String())
}
