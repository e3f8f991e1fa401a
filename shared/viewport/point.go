package viewport

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/yohamta/donburi/features/math"
)

var ErrInvalidPoint = errors.New("invalid point")

// ParsePoint parses a screen point written as "x,y".
func ParsePoint(s string) (math.Vec2, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return math.Vec2{}, fmt.Errorf("%w %q: want x,y", ErrInvalidPoint, s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return math.Vec2{}, fmt.Errorf("%w %q: %w", ErrInvalidPoint, s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return math.Vec2{}, fmt.Errorf("%w %q: %w", ErrInvalidPoint, s, err)
	}
	return math.Vec2{X: x, Y: y}, nil
}
