package systems

import "go.uber.org/zap"

var logger = zap.NewNop()

// SetLogger sets the logger used by systems. nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
