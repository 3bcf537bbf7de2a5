package logging

import (
	"io"
	"strings"
	"sync"
	"testing"

	"go.uber.org/zap/zapcore"
)

// Appender receives every log entry a logger emits at or above its level. zapcore.Core satisfies
// it, so an observer core can be attached directly.
type Appender interface {
	Write(zapcore.Entry, []zapcore.Field) error
}

// encoderConfig lays entries out as tab separated columns: time, level, logger name, caller,
// message, then the fields as JSON.
func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

type writerAppender struct {
	mu      sync.Mutex
	w       io.Writer
	encoder zapcore.Encoder
}

// NewWriterAppender returns an appender writing one human readable line per entry to w. Lines
// from concurrent loggers are not interleaved.
func NewWriterAppender(w io.Writer) Appender {
	return &writerAppender{w: w, encoder: zapcore.NewConsoleEncoder(encoderConfig())}
}

func (a *writerAppender) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	buf, err := a.encoder.EncodeEntry(entry, fields)
	if err != nil {
		return err
	}
	defer buf.Free()
	a.mu.Lock()
	defer a.mu.Unlock()
	_, err = a.w.Write(buf.Bytes())
	return err
}

// testAppender sends each entry to tb.Log so it is reported with the test that produced it.
type testAppender struct {
	tb      testing.TB
	encoder zapcore.Encoder
}

func (a testAppender) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	a.tb.Helper()
	buf, err := a.encoder.EncodeEntry(entry, fields)
	if err != nil {
		return err
	}
	defer buf.Free()
	a.tb.Log(strings.TrimSuffix(buf.String(), "\n"))
	return nil
}
