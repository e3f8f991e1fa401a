// Package zoom turns discrete zoom gestures into a short, decaying series
// of camera scale operations driven by a periodic scheduler.
package zoom

import (
	"errors"
	"fmt"
	stdmath "math"

	"github.com/yohamta/donburi/features/math"
)

var (
	ErrNilCamera     = errors.New("zoom: nil camera")
	ErrNilScheduler  = errors.New("zoom: nil scheduler")
	ErrInvalidConfig = errors.New("zoom: invalid config")
)

// tickEpsilon absorbs float error in StartVelocity/Step (0.1/0.005 is not exactly 20).
const tickEpsilon = 1e-9

type Direction int

const (
	In Direction = iota
	Out
)

func (d Direction) String() string {
	switch d {
	case In:
		return "in"
	case Out:
		return "out"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

type State int

const (
	Idle State = iota
	Animating
)

func (s State) String() string {
	if s == Animating {
		return "animating"
	}
	return "idle"
}

// Camera scales the current view by a multiplicative factor around a
// screen-space origin. factor > 1 zooms in.
type Camera interface {
	ZoomBy(factor float64, origin math.Vec2)
}

// CameraFunc adapts a plain function to Camera.
type CameraFunc func(factor float64, origin math.Vec2)

func (f CameraFunc) ZoomBy(factor float64, origin math.Vec2) { f(factor, origin) }

// Config holds the velocity profile of a zoom session. A Step larger than
// StartVelocity gives a single tick. With StartVelocity >= 1 the first
// zoom-out factors (1 - v) are not positive; Viewport.ZoomBy and
// LevelCamera ignore them, so those ticks leave the camera unchanged.
type Config struct {
	StartVelocity float64 `mapstructure:"start_velocity" yaml:"start_velocity"`
	Step          float64 `mapstructure:"step" yaml:"step"`
}

func DefaultConfig() Config {
	return Config{StartVelocity: 0.1, Step: 0.005}
}

func (c Config) Validate() error {
	switch {
	case !isPositive(c.StartVelocity):
		return fmt.Errorf("%w: start velocity %v must be > 0", ErrInvalidConfig, c.StartVelocity)
	case !isPositive(c.Step):
		return fmt.Errorf("%w: step %v must be > 0", ErrInvalidConfig, c.Step)
	}
	return nil
}

// TickCount returns how many ticks a session lasts: ceil(v0/d).
func TickCount(v0, d float64) int {
	if !isPositive(v0) || !isPositive(d) {
		return 0
	}
	return int(stdmath.Ceil(v0/d - tickEpsilon))
}

// Factor returns the zoom factor applied on tick i of a session.
func Factor(dir Direction, v0, d float64, i int) float64 {
	v := v0 - float64(i)*d
	if dir == Out {
		return 1 - v
	}
	return 1 + v
}

// Session is a snapshot of the animator's zoom session.
type Session struct {
	Direction Direction
	Origin    math.Vec2
	Velocity  float64
	Tick      int
	Active    bool
}

// Animator drives one zoom session at a time. It is not safe for
// concurrent use; all calls, including the scheduled tick, must come from
// the goroutine that owns the scheduler.
type Animator struct {
	camera Camera
	sched  Scheduler
	cfg    Config
	total  int

	session Session
	token   Token

	// OnFinish is called when a session runs out of velocity. It is not
	// called when the session is stopped or replaced.
	OnFinish func(Session)
}

func NewAnimator(camera Camera, sched Scheduler, cfg Config) (*Animator, error) {
	if camera == nil {
		return nil, ErrNilCamera
	}
	if sched == nil {
		return nil, ErrNilScheduler
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Animator{
		camera: camera,
		sched:  sched,
		cfg:    cfg,
		total:  TickCount(cfg.StartVelocity, cfg.Step),
	}, nil
}

func (a *Animator) ZoomIn(origin math.Vec2) { a.start(In, origin) }
func (a *Animator) ZoomOut(origin math.Vec2) { a.start(Out, origin) }

func (a *Animator) start(dir Direction, origin math.Vec2) {
	a.Stop()
	a.session = Session{
		Direction: dir,
		Origin:    origin,
		Velocity:  a.cfg.StartVelocity,
		Active:    true,
	}
	a.token = a.sched.Schedule(a.Tick)
}

// Stop cancels the scheduled tick. Calling it while idle does nothing.
func (a *Animator) Stop() {
	if a.token != 0 {
		a.sched.Cancel(a.token)
		a.token = 0
	}
	a.session.Active = false
}

// Tick applies one frame of the active session to the camera.
func (a *Animator) Tick() {
	if !a.session.Active {
		return
	}
	s := &a.session
	a.camera.ZoomBy(Factor(s.Direction, a.cfg.StartVelocity, a.cfg.Step, s.Tick), s.Origin)
	s.Tick++
	s.Velocity = a.cfg.StartVelocity - float64(s.Tick)*a.cfg.Step
	if s.Tick < a.total {
		return
	}

	s.Velocity = 0
	a.Stop()
	if a.OnFinish != nil {
		a.OnFinish(*s)
	}
}

func (a *Animator) State() State {
	if a.session.Active {
		return Animating
	}
	return Idle
}

func (a *Animator) Active() bool { return a.session.Active }
func (a *Animator) Session() Session { return a.session }
func (a *Animator) Config() Config { return a.cfg }
func (a *Animator) TotalTicks() int { return a.total }

func isPositive(v float64) bool {
	return v > 0 && !stdmath.IsInf(v, 1)
}
