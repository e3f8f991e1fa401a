package zoom

import (
	"context"
	stdmath "math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func TestSimulateZoomIn(t *testing.T) {
	var steps []Step
	n, err := Simulate(context.Background(), DefaultConfig(), In, math.Vec2{X: 10, Y: 20}, time.Millisecond, func(s Step) {
		steps = append(steps, s)
	})

	require.NoError(t, err)
	assert.Equal(t, 20, n)
	require.Len(t, steps, 20)
	assert.InDelta(t, 1.1, steps[0].Factor, 1e-12)
	assert.InDelta(t, 1.005, steps[19].Factor, 1e-12)
	assert.Greater(t, steps[19].Scale, 2.0)
	assert.InDelta(t, stdmath.Log2(steps[19].Scale), steps[19].Level, 1e-9)
}

func TestSimulateZoomOutShrinks(t *testing.T) {
	n, err := Simulate(context.Background(), Config{StartVelocity: 0.2, Step: 0.05}, Out, math.Vec2{}, time.Millisecond, nil)

	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestSimulateInvalidConfig(t *testing.T) {
	_, err := Simulate(context.Background(), Config{}, In, math.Vec2{}, time.Millisecond, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSimulateCancelled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	n, err := Simulate(ctx, DefaultConfig(), In, math.Vec2{}, time.Hour, nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Zero(t, n)
}
