// Package logging provides the leveled, structured loggers handed to the elevator arm solver and
// its tooling. Entries are zap entries fanned out to any number of appenders.
package logging

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Logger is a named, leveled, structured logger. The variadic arguments of the w methods are
// alternating keys and values.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	// CDebugw logs at debug level when the logger is at DEBUG or ctx came from WithDebug.
	CDebugw(ctx context.Context, msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})

	// Sublogger returns a logger named "<name>.<subname>" that shares the appenders and starts at
	// the current level.
	Sublogger(subname string) Logger
	SetLevel(level Level)
	GetLevel() Level
}

// New returns a logger at the given level writing to the appenders. With no appenders the logger
// discards everything.
func New(name string, level Level, appenders ...Appender) Logger {
	return &logger{name: name, level: newAtomicLevel(level), appenders: appenders}
}

// NewTestLogger returns a debug logger that writes to tb.Log.
func NewTestLogger(tb testing.TB) Logger {
	logger, _ := NewObservedTestLogger(tb)
	return logger
}

// NewObservedTestLogger is like NewTestLogger but also records every entry for assertions.
func NewObservedTestLogger(tb testing.TB) (Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.LevelEnablerFunc(zapcore.DebugLevel.Enabled))
	return New("", DEBUG, testAppender{tb: tb, encoder: zapcore.NewConsoleEncoder(encoderConfig())}, core), logs
}
