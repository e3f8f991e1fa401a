package zoom

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func TestFrameSchedulerOrderAndCancel(t *testing.T) {
	s := NewFrameScheduler()
	var order []string

	a := s.Schedule(func() { order = append(order, "a") })
	s.Schedule(func() { order = append(order, "b") })
	assert.NotZero(t, a)
	assert.Equal(t, 2, s.Len())

	s.Advance()
	assert.Equal(t, []string{"a", "b"}, order)

	s.Cancel(a)
	s.Cancel(a)
	s.Advance()
	assert.Equal(t, []string{"a", "b", "b"}, order)
	assert.Equal(t, uint64(2), s.Frame())
}

func TestFrameSchedulerMutationDuringAdvance(t *testing.T) {
	s := NewFrameScheduler()
	var order []string
	var second Token

	s.Schedule(func() {
		order = append(order, "first")
		s.Cancel(second)
		s.Schedule(func() { order = append(order, "late") })
	})
	second = s.Schedule(func() { order = append(order, "second") })

	s.Advance()
	assert.Equal(t, []string{"first"}, order)

	s.Advance()
	assert.Equal(t, []string{"first", "first", "late"}, order)
}

func TestFrameSchedulerSelfCancel(t *testing.T) {
	s := NewFrameScheduler()
	calls := 0
	var tok Token
	tok = s.Schedule(func() {
		calls++
		s.Cancel(tok)
	})
	s.Advance()
	s.Advance()
	assert.Equal(t, 1, calls)
	assert.Zero(t, s.Len())
}

func TestTickerSchedulerRunsSessionToCompletion(t *testing.T) {
	sched := NewTickerScheduler(time.Millisecond, StopWhenIdle())
	cam := &recordingCamera{}
	a, err := NewAnimator(cam, sched, DefaultConfig())
	require.NoError(t, err)

	a.ZoomOut(math.Vec2{X: 10, Y: 10})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, sched.Run(ctx))

	assert.Len(t, cam.calls, 20)
	assert.GreaterOrEqual(t, sched.Ticks(), uint64(20))
	assert.Equal(t, Idle, a.State())
}

func TestTickerSchedulerStop(t *testing.T) {
	sched := NewTickerScheduler(time.Millisecond)
	calls := 0
	sched.Schedule(func() {
		calls++
		if calls == 3 {
			sched.Stop()
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, sched.Run(ctx))
	assert.Equal(t, 3, calls)

	sched.Stop()
}

func TestTickerSchedulerContextCancel(t *testing.T) {
	sched := NewTickerScheduler(time.Hour)
	sched.Schedule(func() {})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sched.Run(ctx), context.Canceled)
}

func TestTickerSchedulerIdleReturnsImmediately(t *testing.T) {
	sched := NewTickerScheduler(time.Hour, StopWhenIdle())
	assert.NoError(t, sched.Run(context.Background()))
	assert.Zero(t, sched.Ticks())
}
