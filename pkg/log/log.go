// Package log provides structured logging for the gentensor library,
// backed by zerolog.
//
// Two entry points are offered: GetLogger returns the raw zerolog
// logger for fluent call sites, and GetLoggerWithName returns a small
// keyed Logger bound to a component name for the common
// message-plus-key-values style. The default level is Warn so the
// library stays quiet unless a caller opts in via SetLevel.
package log

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

// Logger is the keyed logging interface handed to components.
// Key-value pairs alternate keys (string) and values.
type Logger interface {
	Debug(msg string, keyvals ...interface{})
	Info(msg string, keyvals ...interface{})
	Warn(msg string, keyvals ...interface{})
	Error(msg string, keyvals ...interface{})
}

var (
	mu   sync.RWMutex
	base = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.WarnLevel)
)

// GetLogger returns the library's zerolog logger.
func GetLogger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// GetLoggerWithName returns a Logger tagged with a component name.
func GetLoggerWithName(name string) Logger {
	mu.RLock()
	defer mu.RUnlock()
	return &zlogger{l: base.With().Str("component", name).Logger()}
}

// SetLevel adjusts the global level of the library logger.
func SetLevel(level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	base = base.Level(level)
}

// SetOutput redirects the library logger, e.g. to a test buffer or a
// console writer.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	base = base.Output(w)
}

type zlogger struct {
	l zerolog.Logger
}

func (z *zlogger) Debug(msg string, keyvals ...interface{}) {
	z.l.Debug().Fields(keyvals).Msg(msg)
}

func (z *zlogger) Info(msg string, keyvals ...interface{}) {
	z.l.Info().Fields(keyvals).Msg(msg)
}

func (z *zlogger) Warn(msg string, keyvals ...interface{}) {
	z.l.Warn().Fields(keyvals).Msg(msg)
}

func (z *zlogger) Error(msg string, keyvals ...interface{}) {
	z.l.Error().Fields(keyvals).Msg(msg)
}
