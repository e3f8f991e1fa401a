package zoom

import (
	"context"
	"sync"
	"time"
)

// Token identifies a scheduled callback. The zero Token is never issued.
type Token uint64

// Scheduler invokes registered callbacks periodically until they are
// cancelled.
type Scheduler interface {
	Schedule(fn func()) Token
	Cancel(t Token)
}

type entry struct {
	token Token
	fn    func()
}

// registry keeps callbacks in registration order.
type registry struct {
	next    Token
	entries []entry
}

func (r *registry) add(fn func()) Token {
	r.next++
	r.entries = append(r.entries, entry{token: r.next, fn: fn})
	return r.next
}

func (r *registry) remove(t Token) {
	for i, e := range r.entries {
		if e.token == t {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return
		}
	}
}

func (r *registry) has(t Token) bool {
	for _, e := range r.entries {
		if e.token == t {
			return true
		}
	}
	return false
}

func (r *registry) snapshot(dst []entry) []entry {
	return append(dst[:0], r.entries...)
}

// FrameScheduler is driven by the host: Advance is called once per display
// frame and runs every registered callback once. Callbacks registered while
// Advance is running first run on the next frame; callbacks cancelled while
// Advance is running are skipped immediately.
type FrameScheduler struct {
	reg     registry
	pending []entry
	frame   uint64
}

func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

func (s *FrameScheduler) Schedule(fn func()) Token {
	return s.reg.add(fn)
}

func (s *FrameScheduler) Cancel(t Token) {
	s.reg.remove(t)
}

// Advance runs one frame.
func (s *FrameScheduler) Advance() {
	s.frame++
	s.pending = s.reg.snapshot(s.pending)
	for _, e := range s.pending {
		if !s.reg.has(e.token) {
			continue
		}
		e.fn()
	}
}

func (s *FrameScheduler) Len() int      { return len(s.reg.entries) }
func (s *FrameScheduler) Frame() uint64 { return s.frame }

// TickerScheduler is an interval timer. Run drives the registered
// callbacks on the calling goroutine; Schedule and Cancel may be called
// from any goroutine.
type TickerScheduler struct {
	interval     time.Duration
	stopWhenIdle bool

	mu       sync.Mutex
	reg      registry
	stopChan chan struct{}
	stopOnce sync.Once
	ticks    uint64
}

type TickerOption func(*TickerScheduler)

// StopWhenIdle makes Run return once no callbacks remain registered.
func StopWhenIdle() TickerOption {
	return func(s *TickerScheduler) { s.stopWhenIdle = true }
}

func NewTickerScheduler(interval time.Duration, opts ...TickerOption) *TickerScheduler {
	if interval <= 0 {
		interval = time.Second / 60
	}
	s := &TickerScheduler{
		interval: interval,
		stopChan: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *TickerScheduler) Schedule(fn func()) Token {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reg.add(fn)
}

func (s *TickerScheduler) Cancel(t Token) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reg.remove(t)
}

func (s *TickerScheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reg.entries)
}

func (s *TickerScheduler) Ticks() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticks
}

// Run blocks until ctx is done, Stop is called, or, with StopWhenIdle, the
// last callback is cancelled. It returns ctx.Err() when the context ended
// the loop and nil otherwise.
func (s *TickerScheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	var batch []entry
	for {
		if s.stopWhenIdle && s.Len() == 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.stopChan:
			return nil
		case <-ticker.C:
			if s.stopped() {
				return nil
			}
			batch = s.tick(batch)
		}
	}
}

func (s *TickerScheduler) tick(batch []entry) []entry {
	s.mu.Lock()
	s.ticks++
	batch = s.reg.snapshot(batch)
	s.mu.Unlock()

	for _, e := range batch {
		s.mu.Lock()
		live := s.reg.has(e.token)
		s.mu.Unlock()
		if live {
			e.fn()
		}
	}
	return batch
}

func (s *TickerScheduler) stopped() bool {
	select {
	case <-s.stopChan:
		return true
	default:
		return false
	}
}

// Stop ends Run. It is safe to call more than once.
func (s *TickerScheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopChan) })
}
