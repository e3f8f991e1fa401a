package zoom

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

type zoomCall struct {
	factor float64
	origin math.Vec2
}

type recordingCamera struct {
	calls []zoomCall
}

func (c *recordingCamera) ZoomBy(factor float64, origin math.Vec2) {
	c.calls = append(c.calls, zoomCall{factor: factor, origin: origin})
}

func newTestAnimator(t *testing.T, cfg Config) (*Animator, *recordingCamera, *FrameScheduler) {
	t.Helper()
	cam := &recordingCamera{}
	sched := NewFrameScheduler()
	a, err := NewAnimator(cam, sched, cfg)
	require.NoError(t, err)
	return a, cam, sched
}

func runFrames(s *FrameScheduler, n int) {
	for i := 0; i < n; i++ {
		s.Advance()
	}
}

func TestNewAnimatorErrors(t *testing.T) {
	sched := NewFrameScheduler()
	cam := &recordingCamera{}

	_, err := NewAnimator(nil, sched, DefaultConfig())
	assert.ErrorIs(t, err, ErrNilCamera)

	_, err = NewAnimator(cam, nil, DefaultConfig())
	assert.ErrorIs(t, err, ErrNilScheduler)

	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero velocity", Config{StartVelocity: 0, Step: 0.005}},
		{"negative step", Config{StartVelocity: 0.1, Step: -0.005}},
		{"nan velocity", Config{StartVelocity: stdmath.NaN(), Step: 0.005}},
		{"infinite step", Config{StartVelocity: 0.1, Step: stdmath.Inf(1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAnimator(cam, sched, tt.cfg)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestStepLargerThanVelocityRunsOneTick(t *testing.T) {
	cfg := Config{StartVelocity: 0.1, Step: 0.25}
	require.NoError(t, cfg.Validate())
	a, cam, sched := newTestAnimator(t, cfg)

	a.ZoomIn(math.Vec2{X: 5, Y: 5})
	assert.Equal(t, 1, a.TotalTicks())
	runFrames(sched, 5)

	require.Len(t, cam.calls, 1)
	assert.InDelta(t, 1.1, cam.calls[0].factor, 1e-12)
	assert.Equal(t, Idle, a.State())
	assert.Equal(t, 0, sched.Len())
}

func TestLargeVelocityZoomOut(t *testing.T) {
	cfg := Config{StartVelocity: 1.5, Step: 0.5}
	require.NoError(t, cfg.Validate())
	a, cam, sched := newTestAnimator(t, cfg)

	a.ZoomOut(math.Vec2{})
	runFrames(sched, 5)

	require.Len(t, cam.calls, 3)
	assert.InDelta(t, -0.5, cam.calls[0].factor, 1e-12)
	assert.InDelta(t, 0, cam.calls[1].factor, 1e-12)
	assert.InDelta(t, 0.5, cam.calls[2].factor, 1e-12)

	// non-positive factors leave a level camera untouched
	ctrl := &levelController{level: 10}
	lc := LevelCamera{Controller: ctrl}
	for _, c := range cam.calls {
		lc.ZoomBy(c.factor, c.origin)
	}
	assert.InDelta(t, 9, ctrl.level, 1e-12)
}

func TestDefaultSessionRunsTwentyTicks(t *testing.T) {
	a, cam, sched := newTestAnimator(t, DefaultConfig())
	origin := math.Vec2{X: 120, Y: 80}

	a.ZoomIn(origin)
	assert.Equal(t, Animating, a.State())
	assert.Equal(t, 20, a.TotalTicks())

	runFrames(sched, 40)

	require.Len(t, cam.calls, 20)
	assert.InDelta(t, 1.10, cam.calls[0].factor, 1e-12)
	assert.InDelta(t, 1.005, cam.calls[19].factor, 1e-12)
	for _, c := range cam.calls {
		assert.Equal(t, origin, c.origin)
	}
	assert.Equal(t, Idle, a.State())
	assert.Equal(t, 0, sched.Len())
	assert.Zero(t, a.Session().Velocity)
}

func TestZoomOutFactors(t *testing.T) {
	a, cam, sched := newTestAnimator(t, DefaultConfig())

	a.ZoomOut(math.Vec2{})
	runFrames(sched, 20)

	require.Len(t, cam.calls, 20)
	assert.InDelta(t, 0.90, cam.calls[0].factor, 1e-12)
	assert.InDelta(t, 0.995, cam.calls[19].factor, 1e-12)
	assert.False(t, a.Active())
}

func TestTickCountMatchesCeil(t *testing.T) {
	tests := []struct {
		v0, d float64
		want  int
	}{
		{0.1, 0.005, 20},
		{0.1, 0.03, 4},
		{0.1, 0.1, 1},
		{0.25, 0.01, 25},
		{0.07, 0.02, 4},
		{1, 0.3, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TickCount(tt.v0, tt.d), "v0=%v d=%v", tt.v0, tt.d)

		a, cam, sched := newTestAnimator(t, Config{StartVelocity: tt.v0, Step: tt.d})
		a.ZoomIn(math.Vec2{})
		runFrames(sched, tt.want+5)
		assert.Len(t, cam.calls, tt.want, "v0=%v d=%v", tt.v0, tt.d)
	}
	assert.Zero(t, TickCount(0, 0.1))
	assert.Zero(t, TickCount(0.1, 0))
}

func TestFactorsBoundedAndDecreasing(t *testing.T) {
	cfg := Config{StartVelocity: 0.3, Step: 0.007}
	a, cam, sched := newTestAnimator(t, cfg)

	a.ZoomIn(math.Vec2{})
	runFrames(sched, 100)

	require.Len(t, cam.calls, TickCount(cfg.StartVelocity, cfg.Step))
	prev := stdmath.Inf(1)
	for i, c := range cam.calls {
		assert.Greater(t, c.factor, 1.0)
		assert.Less(t, c.factor, 1+cfg.StartVelocity+1e-12)
		assert.Less(t, c.factor, prev)
		assert.InDelta(t, Factor(In, cfg.StartVelocity, cfg.Step, i), c.factor, 1e-12)
		prev = c.factor
	}
}

func TestStopIsImmediateAndIdempotent(t *testing.T) {
	a, cam, sched := newTestAnimator(t, DefaultConfig())

	a.ZoomIn(math.Vec2{})
	runFrames(sched, 5)
	a.Stop()
	a.Stop()
	runFrames(sched, 10)

	assert.Len(t, cam.calls, 5)
	assert.Equal(t, Idle, a.State())
	assert.Equal(t, 0, sched.Len())

	// direct ticks after stop are ignored as well
	a.Tick()
	assert.Len(t, cam.calls, 5)
}

func TestStopWhileIdle(t *testing.T) {
	a, cam, sched := newTestAnimator(t, DefaultConfig())
	a.Stop()
	runFrames(sched, 3)
	assert.Empty(t, cam.calls)
	assert.Equal(t, Idle, a.State())
}

func TestRestartResetsVelocity(t *testing.T) {
	a, cam, sched := newTestAnimator(t, DefaultConfig())

	a.ZoomIn(math.Vec2{X: 1, Y: 1})
	runFrames(sched, 7)
	a.ZoomOut(math.Vec2{X: 2, Y: 2})

	s := a.Session()
	assert.Equal(t, Out, s.Direction)
	assert.Equal(t, 0, s.Tick)
	assert.InDelta(t, 0.1, s.Velocity, 1e-12)
	assert.Equal(t, 1, sched.Len())

	runFrames(sched, 30)

	require.Len(t, cam.calls, 27)
	assert.InDelta(t, 0.90, cam.calls[7].factor, 1e-12)
	assert.Equal(t, math.Vec2{X: 2, Y: 2}, cam.calls[7].origin)
}

func TestOnFinishOnlyOnNaturalEnd(t *testing.T) {
	a, _, sched := newTestAnimator(t, DefaultConfig())
	var finished []Session
	a.OnFinish = func(s Session) { finished = append(finished, s) }

	a.ZoomIn(math.Vec2{})
	runFrames(sched, 3)
	a.ZoomOut(math.Vec2{})
	runFrames(sched, 3)
	a.Stop()
	assert.Empty(t, finished)

	a.ZoomIn(math.Vec2{X: 5})
	runFrames(sched, 25)
	require.Len(t, finished, 1)
	assert.Equal(t, In, finished[0].Direction)
	assert.Equal(t, 20, finished[0].Tick)
	assert.False(t, finished[0].Active)
}

func TestRestartFromOnFinish(t *testing.T) {
	a, cam, sched := newTestAnimator(t, Config{StartVelocity: 0.1, Step: 0.05})
	restarted := false
	a.OnFinish = func(Session) {
		if !restarted {
			restarted = true
			a.ZoomOut(math.Vec2{})
		}
	}

	a.ZoomIn(math.Vec2{})
	runFrames(sched, 10)

	require.Len(t, cam.calls, 4)
	assert.InDelta(t, 1.1, cam.calls[0].factor, 1e-12)
	assert.InDelta(t, 0.9, cam.calls[2].factor, 1e-12)
	assert.False(t, a.Active())
}

func TestDirectionAndStateStrings(t *testing.T) {
	assert.Equal(t, "in", In.String())
	assert.Equal(t, "out", Out.String())
	assert.Equal(t, "Direction(7)", Direction(7).String())
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "animating", Animating.String())
}

type levelController struct{ level float64 }

func (c *levelController) ZoomLevel() float64 { return c.level }
func (c *levelController) SetZoomLevel(l float64) { c.level = l }

func TestLevelCamera(t *testing.T) {
	ctrl := &levelController{level: 10}
	cam := LevelCamera{Controller: ctrl}

	cam.ZoomBy(2, math.Vec2{X: 50})
	assert.InDelta(t, 11, ctrl.level, 1e-12)
	cam.ZoomBy(0.5, math.Vec2{})
	assert.InDelta(t, 10, ctrl.level, 1e-12)
	cam.ZoomBy(0, math.Vec2{})
	cam.ZoomBy(-1, math.Vec2{})
	assert.InDelta(t, 10, ctrl.level, 1e-12)
}

func TestCameraFunc(t *testing.T) {
	var got float64
	a, err := NewAnimator(CameraFunc(func(f float64, _ math.Vec2) { got = f }), NewFrameScheduler(), DefaultConfig())
	require.NoError(t, err)
	a.ZoomIn(math.Vec2{})
	a.Tick()
	assert.InDelta(t, 1.1, got, 1e-12)
}
