package zoom

import (
	"context"
	"time"

	"github.com/yohamta/donburi/features/math"
)

// Step is one tick of a simulated session.
type Step struct {
	Tick   int
	Factor float64
	Scale  float64 // Product of all factors so far
	Level  float64 // Zoom levels gained so far
}

// levelCounter is a LevelController starting at level 0.
type levelCounter struct{ level float64 }

func (c *levelCounter) ZoomLevel() float64         { return c.level }
func (c *levelCounter) SetZoomLevel(level float64) { c.level = level }

// Simulate runs a single session on a TickerScheduler with a camera that
// only records the factors, calling onStep after every tick. It returns
// the number of ticks applied.
func Simulate(ctx context.Context, cfg Config, dir Direction, origin math.Vec2, interval time.Duration, onStep func(Step)) (int, error) {
	sched := NewTickerScheduler(interval, StopWhenIdle())

	var steps int
	scale := 1.0
	levels := &levelCounter{}
	levelCam := LevelCamera{Controller: levels}
	camera := CameraFunc(func(factor float64, origin math.Vec2) {
		steps++
		scale *= factor
		levelCam.ZoomBy(factor, origin)
		if onStep != nil {
			onStep(Step{Tick: steps, Factor: factor, Scale: scale, Level: levels.level})
		}
	})

	a, err := NewAnimator(camera, sched, cfg)
	if err != nil {
		return 0, err
	}
	if dir == Out {
		a.ZoomOut(origin)
	} else {
		a.ZoomIn(origin)
	}

	if err := sched.Run(ctx); err != nil {
		a.Stop()
		return steps, err
	}
	return steps, nil
}
