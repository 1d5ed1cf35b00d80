package log

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ Log = (*Logger)(nil)

// Config selects level, encoding and destination
type Config struct {
	Level Level
	// Output is a file path, "stderr" or "stdout"
	// The terminal binary must not log to the screen it draws on
	Output string
	// Console switches from JSON to the human-readable encoder
	Console bool
}

type Logger struct {
	zapLogger *zap.Logger
	zapLevel  zap.AtomicLevel
	closeSink func() // nil unless New opened the output
}

func New(cfg Config) (*Logger, error) {
	output := cfg.Output
	if output == "" {
		output = "stderr"
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	if cfg.Console {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	sink, closeSink, err := zap.Open(output)
	if err != nil {
		return nil, fmt.Errorf("open log output: %w", err)
	}

	level := zap.NewAtomicLevelAt(toZapLevel(cfg.Level))
	var encoder zapcore.Encoder = zapcore.NewJSONEncoder(encoderConfig)
	if cfg.Console {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}
	core := zapcore.NewCore(encoder, sink, level)

	return &Logger{
		zapLogger: zap.New(core, zap.ErrorOutput(sink)),
		zapLevel:  level,
		closeSink: closeSink,
	}, nil
}

// NewNop returns a logger that discards everything
func NewNop() *Logger {
	return &Logger{
		zapLogger: zap.NewNop(),
		zapLevel:  zap.NewAtomicLevelAt(zap.FatalLevel),
	}
}

// NewWithCore wraps an existing zap core; used by tests with an observer core
func NewWithCore(core zapcore.Core) *Logger {
	level := zap.NewAtomicLevelAt(zap.DebugLevel)
	for _, l := range []zapcore.Level{zap.DebugLevel, zap.InfoLevel, zap.WarnLevel, zap.ErrorLevel} {
		if core.Enabled(l) {
			level.SetLevel(l)
			break
		}
	}
	return &Logger{zapLogger: zap.New(core), zapLevel: level}
}

func (l *Logger) Debug(msg string, fields ...Field) { l.zapLogger.Debug(msg, fields...) }
func (l *Logger) Info(msg string, fields ...Field)  { l.zapLogger.Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...Field)  { l.zapLogger.Warn(msg, fields...) }
func (l *Logger) Error(msg string, fields ...Field) { l.zapLogger.Error(msg, fields...) }
func (l *Logger) Fatal(msg string, fields ...Field) { l.zapLogger.Fatal(msg, fields...) }

func (l *Logger) With(fields ...Field) Log {
	return &Logger{
		zapLogger: l.zapLogger.With(fields...),
		zapLevel:  l.zapLevel,
	}
}

// Enabled reports whether level would be written; callers use it to skip building
// expensive debug payloads
func (l *Logger) Enabled(level Level) bool {
	return l.zapLevel.Enabled(toZapLevel(level))
}

func (l *Logger) SetLevel(level Level) {
	l.zapLevel.SetLevel(toZapLevel(level))
}

func (l *Logger) Sync() error {
	return l.zapLogger.Sync()
}

// Close flushes and releases the output opened by New; loggers derived with With share
// the output and must not be used afterwards. Call it once
func (l *Logger) Close() error {
	err := l.zapLogger.Sync()
	if l.closeSink != nil {
		l.closeSink()
		l.closeSink = nil
	}
	return err
}

func toZapLevel(level Level) zapcore.Level {
	switch level {
	case LevelDebug:
		return zap.DebugLevel
	case LevelInfo:
		return zap.InfoLevel
	case LevelWarn:
		return zap.WarnLevel
	case LevelError:
		return zap.ErrorLevel
	case LevelFatal:
		return zap.FatalLevel
	default:
		return zap.InfoLevel
	}
}
