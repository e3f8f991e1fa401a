// Package gesture recognises the map's zoom gestures from per-frame
// pointer input: double tap (or double click) zooms in at the tap, a
// two-finger tap zooms out at the fingers' midpoint, and the mouse wheel
// zooms around the cursor.
package gesture

import (
	stdmath "math"

	"github.com/yohamta/donburi/features/math"
)

type Kind int

const (
	None Kind = iota
	ZoomIn
	ZoomOut
)

func (k Kind) String() string {
	switch k {
	case ZoomIn:
		return "zoom-in"
	case ZoomOut:
		return "zoom-out"
	}
	return "none"
}

type Gesture struct {
	Kind   Kind
	Origin math.Vec2
}

type Config struct {
	DoubleTapFrames   int
	DoubleTapDistance float64
	TwoFingerTapMax   int
	WheelThreshold    float64
}

// Frame is the pointer input of one frame.
type Frame struct {
	Touches []math.Vec2 // Fingers currently down
	Taps    []math.Vec2 // Single pointers released this frame without dragging
	Wheel   float64     // Vertical wheel delta; positive scrolls up
	Cursor  math.Vec2
}

// Recognizer keeps the state needed to recognise gestures spanning frames.
type Recognizer struct {
	cfg   Config
	frame int

	lastTapFrame int
	lastTapPos   math.Vec2

	multiStart int
	multiMax   int
	multiMid   math.Vec2
}

func NewRecognizer(cfg Config) *Recognizer {
	return &Recognizer{cfg: cfg}
}

// Update consumes one frame of input and returns the gesture completed in
// it, if any.
func (r *Recognizer) Update(f Frame) Gesture {
	r.frame++

	if g, ok := r.multiTouch(f); ok {
		return g
	}
	if r.multiStart == 0 {
		for _, p := range f.Taps {
			if g, ok := r.tap(p); ok {
				return g
			}
		}
	}

	switch {
	case f.Wheel >= r.cfg.WheelThreshold && f.Wheel > 0:
		return Gesture{Kind: ZoomIn, Origin: f.Cursor}
	case f.Wheel <= -r.cfg.WheelThreshold && f.Wheel < 0:
		return Gesture{Kind: ZoomOut, Origin: f.Cursor}
	}
	return Gesture{}
}

func (r *Recognizer) multiTouch(f Frame) (Gesture, bool) {
	n := len(f.Touches)
	if n >= 2 && r.multiStart == 0 {
		r.multiStart = r.frame
		r.multiMid = math.Vec2{
			X: (f.Touches[0].X + f.Touches[1].X) / 2,
			Y: (f.Touches[0].Y + f.Touches[1].Y) / 2,
		}
		r.lastTapFrame = 0
	}
	if r.multiStart == 0 {
		return Gesture{}, false
	}
	if n > r.multiMax {
		r.multiMax = n
	}
	if n > 0 {
		return Gesture{}, false
	}

	held := r.frame - r.multiStart
	fingers := r.multiMax
	mid := r.multiMid
	r.multiStart, r.multiMax = 0, 0
	if fingers == 2 && held <= r.cfg.TwoFingerTapMax {
		return Gesture{Kind: ZoomOut, Origin: mid}, true
	}
	return Gesture{}, false
}

func (r *Recognizer) tap(p math.Vec2) (Gesture, bool) {
	if r.lastTapFrame != 0 &&
		r.frame-r.lastTapFrame <= r.cfg.DoubleTapFrames &&
		dist(p, r.lastTapPos) <= r.cfg.DoubleTapDistance {
		r.lastTapFrame = 0
		return Gesture{Kind: ZoomIn, Origin: p}, true
	}
	r.lastTapFrame = r.frame
	r.lastTapPos = p
	return Gesture{}, false
}

func dist(a, b math.Vec2) float64 {
	return stdmath.Hypot(a.X-b.X, a.Y-b.Y)
}
