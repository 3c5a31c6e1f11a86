package logger

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type Config struct {
	Service     string
	Environment string
	Level       Level
	Format      Format
}

// Logger is the structured logging port used across the service. Request
// handlers get a request-scoped instance through FromContext.
type Logger interface {
	Info(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Debug(msg string, fields ...Field)
	Warn(msg string, fields ...Field)

	With(fields ...Field) Logger
	// Sync flushes buffered entries. Call it once before the process exits.
	Sync() error
}

type Field struct {
	Key   string
	Value interface{}
}

func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Strings(key string, values []string) Field {
	return Field{Key: key, Value: values}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value}
}

func Error(err error) Field {
	return Field{Key: "error", Value: err}
}

// Masked keeps the first two runes of value and replaces the rest with '*',
// so logs show the shape of submitted form data without the data itself.
func Masked(key, value string) Field {
	runes := []rune(value)
	for i := 2; i < len(runes); i++ {
		if runes[i] != ' ' && runes[i] != '-' {
			runes[i] = '*'
		}
	}
	return Field{Key: key, Value: string(runes)}
}

type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

var levels = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

func (l *Level) Decode(value string) error {
	level, ok := levels[strings.ToLower(strings.TrimSpace(value))]
	if !ok {
		return fmt.Errorf("invalid log level: %s", value)
	}
	*l = level
	return nil
}

type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

var formats = map[string]Format{
	"json":    FormatJSON,
	"text":    FormatText,
	"console": FormatText,
}

func (f *Format) Decode(value string) error {
	format, ok := formats[strings.ToLower(strings.TrimSpace(value))]
	if !ok {
		return fmt.Errorf("invalid log format: %s", value)
	}
	*f = format
	return nil
}

type loggerKey struct{}

func WithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the request-scoped logger, or a nop logger when the
// context carries none.
func FromContext(ctx context.Context) Logger {
	return FromContextOr(ctx, nopLogger{})
}

func FromContextOr(ctx context.Context, fallback Logger) Logger {
	if logger, ok := ctx.Value(loggerKey{}).(Logger); ok {
		return logger
	}
	return fallback
}
