package logging

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

// Level is the severity of a log entry. A logger set to a level drops entries below it.
type Level int

// DEBUG sits below the zero value so that a zero Level is INFO.
const (
	DEBUG Level = iota - 1
	INFO
	WARN
	ERROR
)

var levelNames = map[Level]string{
	DEBUG: "Debug",
	INFO:  "Info",
	WARN:  "Warn",
	ERROR: "Error",
}

func (level Level) String() string {
	if name, ok := levelNames[level]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", int(level))
}

// AsZap converts the Level to a zapcore.Level.
func (level Level) AsZap() zapcore.Level {
	switch level {
	case DEBUG:
		return zapcore.DebugLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// LevelFromString parses a level name, ignoring case. "warning" is accepted for WARN.
func LevelFromString(inp string) (Level, error) {
	lower := strings.ToLower(inp)
	if lower == "warning" {
		return WARN, nil
	}
	for level, name := range levelNames {
		if strings.ToLower(name) == lower {
			return level, nil
		}
	}
	return DEBUG, errors.Errorf("unknown log level: %q", inp)
}

// atomicLevel is a level shared between goroutines.
type atomicLevel struct {
	val *atomic.Int32
}

func newAtomicLevel(level Level) atomicLevel {
	l := atomicLevel{val: &atomic.Int32{}}
	l.set(level)
	return l
}

func (l atomicLevel) set(level Level) {
	l.val.Store(int32(level))
}

func (l atomicLevel) get() Level {
	return Level(l.val.Load())
}
