package systems

import (
	stdmath "math"

	"github.com/automoto/zoomview/archetypes"
	"github.com/automoto/zoomview/components"
	cfg "github.com/automoto/zoomview/config"
	"github.com/automoto/zoomview/shared/gesture"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Reusable slices for touch IDs to avoid allocations
var (
	touchIDs    []ebiten.TouchID
	releasedIDs []ebiten.TouchID
	touchPoints []math.Vec2
	tapPoints   []math.Vec2
)

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE any system reading InputData.
func UpdateInput(ecs *ecs.ECS) {
	updateInput(ecs, nil)
}

// UpdateInputWithOverlay is UpdateInput for a scene with a UI overlay.
// Pointer input for which overUI reports true does not reach the map.
func UpdateInputWithOverlay(overUI func(x, y int) bool) ecs.System {
	return func(e *ecs.ECS) {
		updateInput(e, overUI)
	}
}

func updateInput(ecs *ecs.ECS, overUI func(x, y int) bool) {
	input, touch := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}

	cx, cy := ebiten.CursorPosition()
	cursor := math.Vec2{X: float64(cx), Y: float64(cy)}
	prevCursor := input.Cursor
	input.Cursor = cursor
	_, input.Wheel = ebiten.Wheel()
	input.OverUI = overUI != nil && overUI(cx, cy)

	tapPoints = tapPoints[:0]
	updateMouseButton(input, touch, prevCursor)
	if input.JustReleased && !input.Dragged {
		tapPoints = append(tapPoints, cursor)
	}
	touchPoints = pollTouches(touch, touchPoints[:0])
	if overUI != nil {
		tapPoints = dropOverUI(tapPoints, overUI)
	}

	frame := gesture.Frame{
		Touches: touchPoints,
		Taps:    tapPoints,
		Cursor:  cursor,
	}
	if !input.OverUI {
		frame.Wheel = input.Wheel
	}
	input.Gesture = touch.Recognizer.Update(frame)
}

func dropOverUI(points []math.Vec2, overUI func(x, y int) bool) []math.Vec2 {
	kept := points[:0]
	for _, p := range points {
		if !overUI(int(p.X), int(p.Y)) {
			kept = append(kept, p)
		}
	}
	return kept
}

func updateMouseButton(input *components.InputData, touch *components.TouchData, prevCursor math.Vec2) {
	input.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	input.JustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	input.Pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	input.DragDelta = math.Vec2{}

	if input.JustPressed {
		touch.PressStart = input.Cursor
		input.Dragged = false
		return
	}
	if input.Pressed {
		input.DragDelta = math.Vec2{X: input.Cursor.X - prevCursor.X, Y: input.Cursor.Y - prevCursor.Y}
		if distance(input.Cursor, touch.PressStart) > cfg.Camera.DragThreshold {
			input.Dragged = true
		}
	}
}

// pollTouches appends active finger positions to dst and appends finished
// single-finger taps to tapPoints.
func pollTouches(touch *components.TouchData, dst []math.Vec2) []math.Vec2 {
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		p := math.Vec2{X: float64(x), Y: float64(y)}
		if _, ok := touch.Starts[id]; !ok {
			touch.Starts[id] = p
		}
		touch.Last[id] = p
		dst = append(dst, p)
	}

	releasedIDs = inpututil.AppendJustReleasedTouchIDs(releasedIDs[:0])
	for _, id := range releasedIDs {
		start, ok := touch.Starts[id]
		if !ok {
			continue
		}
		end := touch.Last[id]
		if distance(start, end) <= cfg.Camera.DragThreshold {
			tapPoints = append(tapPoints, end)
		}
		delete(touch.Starts, id)
		delete(touch.Last, id)
	}
	return dst
}

func getOrCreateInput(ecs *ecs.ECS) (*components.InputData, *components.TouchData) {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = archetypes.Input.Spawn(ecs)
		components.Touch.Set(entry, &components.TouchData{
			Recognizer: gesture.NewRecognizer(gestureConfig()),
			Starts:     make(map[ebiten.TouchID]math.Vec2),
			Last:       make(map[ebiten.TouchID]math.Vec2),
		})
	}
	return components.Input.Get(entry), components.Touch.Get(entry)
}

func gestureConfig() gesture.Config {
	return gesture.Config{
		DoubleTapFrames:   cfg.Zoom.DoubleTapFrames,
		DoubleTapDistance: cfg.Zoom.DoubleTapDistance,
		TwoFingerTapMax:   cfg.Zoom.TwoFingerTapMax,
		WheelThreshold:    cfg.Zoom.WheelThreshold,
	}
}

// GetInput returns the input component, or nil before the first UpdateInput.
func GetInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Input.Get(entry)
}

func distance(a, b math.Vec2) float64 {
	return stdmath.Hypot(a.X-b.X, a.Y-b.Y)
}
