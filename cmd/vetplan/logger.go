package main

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/vetfin/vetplan/internal/calculation"
)

// newLogger builds the CLI logger. Logs go to stderr so reports on stdout stay
// clean; --debug overrides the configured level.
func newLogger(level string, debug bool) (*zap.Logger, error) {
	lvl := zapcore.WarnLevel
	if level != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		lvl = parsed
	}
	if debug {
		lvl = zapcore.DebugLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = !debug
	return cfg.Build()
}

// engineLogger adapts zap to calculation.Logger
type engineLogger struct {
	s *zap.SugaredLogger
}

var _ calculation.Logger = engineLogger{}

func newEngineLogger(l *zap.Logger) engineLogger {
	return engineLogger{s: l.Named("engine").Sugar()}
}

func (l engineLogger) Debugf(format string, args ...any) { l.s.Debugf(format, args...) }
func (l engineLogger) Infof(format string, args ...any)  { l.s.Infof(format, args...) }
func (l engineLogger) Warnf(format string, args ...any)  { l.s.Warnf(format, args...) }
func (l engineLogger) Errorf(format string, args ...any) { l.s.Errorf(format, args...) }
