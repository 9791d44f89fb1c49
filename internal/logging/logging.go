// Package logging holds the module-wide zap logger. It stays a no-op until a
// caller installs a real logger through SetLogger.
package logging

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

// Logger returns the shared logger instance.
func Logger() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// SetLogger replaces the shared logger. Passing nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	mu.Lock()
	logger = l
	mu.Unlock()
}

// Named returns a child logger scoped to a component name.
func Named(name string) *zap.Logger {
	return Logger().Named(name)
}
