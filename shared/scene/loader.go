package scene

import (
	"io/fs"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Callback receives the result of an asynchronous load.
type Callback func(*Scene, error)

type loadResult struct {
	scene *Scene
	err   error
	cb    Callback
}

// Loader loads scenes off the main goroutine and hands the results back
// through Poll, which the owner calls once per frame.
type Loader struct {
	fsys fs.FS
	log  *zap.Logger

	mu       sync.Mutex
	done     []loadResult
	inFlight sync.WaitGroup
}

func NewLoader(fsys fs.FS, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{fsys: fsys, log: log}
}

// LoadSceneAsync starts loading scheme. cb runs on the goroutine that
// calls Poll.
func (l *Loader) LoadSceneAsync(scheme Scheme, cb Callback) {
	l.inFlight.Add(1)
	go func() {
		defer l.inFlight.Done()
		start := time.Now()
		sc, err := Load(l.fsys, scheme)
		if err != nil {
			l.log.Warn("scene load failed", zap.String("scheme", scheme.Name), zap.Error(err))
		} else {
			l.log.Info("scene loaded",
				zap.String("scheme", scheme.Name),
				zap.Float64("width", sc.Width),
				zap.Float64("height", sc.Height),
				zap.Int("markers", len(sc.Markers)),
				zap.Duration("took", time.Since(start)),
			)
		}

		l.mu.Lock()
		l.done = append(l.done, loadResult{scene: sc, err: err, cb: cb})
		l.mu.Unlock()
	}()
}

// Poll delivers finished loads and returns how many callbacks ran.
func (l *Loader) Poll() int {
	l.mu.Lock()
	ready := l.done
	l.done = nil
	l.mu.Unlock()

	for _, r := range ready {
		if r.cb != nil {
			r.cb(r.scene, r.err)
		}
	}
	return len(ready)
}

// Wait blocks until every started load has finished. Results still need
// to be collected with Poll.
func (l *Loader) Wait() {
	l.inFlight.Wait()
}
