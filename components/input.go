package components

import (
	cfg "github.com/automoto/zoomview/config"
	"github.com/automoto/zoomview/shared/gesture"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state

	Cursor math.Vec2 // Mouse position in screen pixels
	Wheel  float64   // Vertical wheel delta this frame

	// Left mouse button
	Pressed      bool
	JustPressed  bool
	JustReleased bool
	DragDelta    math.Vec2 // Cursor movement while pressed
	Dragged      bool      // Moved far enough since press to count as a drag

	// Gesture recognised this frame, if any
	Gesture gesture.Gesture

	// Pointer is over the UI overlay; map gestures are suppressed
	OverUI bool
}

var Input = donburi.NewComponentType[InputData]()

// TouchData tracks pointer state across frames for gesture recognition
type TouchData struct {
	Recognizer *gesture.Recognizer
	Starts     map[ebiten.TouchID]math.Vec2 // Where each active finger touched down
	Last       map[ebiten.TouchID]math.Vec2 // Each active finger's latest position
	PressStart math.Vec2                    // Cursor position at mouse press
}

var Touch = donburi.NewComponentType[TouchData]()

// JustPressedAction reports whether an action went down this frame.
func (d *InputData) JustPressedAction(a cfg.ActionID) bool {
	return d.Current[a] && !d.Previous[a]
}
