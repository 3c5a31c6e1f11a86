package logger

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var zapLevels = map[Level]zapcore.Level{
	LevelDebug: zapcore.DebugLevel,
	LevelInfo:  zapcore.InfoLevel,
	LevelWarn:  zapcore.WarnLevel,
	LevelError: zapcore.ErrorLevel,
}

type zapLogger struct {
	logger *zap.Logger
}

// NewZapLogger builds a zap-backed Logger. Development gets the colored
// console encoder and stack traces on warnings; every other environment gets
// the production encoder with ISO8601 timestamps.
func NewZapLogger(config Config) (Logger, error) {
	zapConfig := zap.NewProductionConfig()
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if config.Environment == "development" {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapConfig.Level = zap.NewAtomicLevelAt(parseZapLevel(config.Level))
	zapConfig.Encoding = "json"
	if config.Format == FormatText {
		zapConfig.Encoding = "console"
	}
	if config.Service != "" {
		zapConfig.InitialFields = map[string]interface{}{"service": config.Service}
	}

	logger, err := zapConfig.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}

	return newFromZap(logger), nil
}

func newFromZap(logger *zap.Logger) *zapLogger {
	return &zapLogger{logger: logger}
}

func (l *zapLogger) Info(msg string, fields ...Field) {
	l.logger.Info(msg, fieldsToZapFields(fields)...)
}

func (l *zapLogger) Error(msg string, fields ...Field) {
	l.logger.Error(msg, fieldsToZapFields(fields)...)
}

func (l *zapLogger) Debug(msg string, fields ...Field) {
	l.logger.Debug(msg, fieldsToZapFields(fields)...)
}

func (l *zapLogger) Warn(msg string, fields ...Field) {
	l.logger.Warn(msg, fieldsToZapFields(fields)...)
}

func (l *zapLogger) With(fields ...Field) Logger {
	return newFromZap(l.logger.With(fieldsToZapFields(fields)...))
}

func (l *zapLogger) Sync() error {
	return l.logger.Sync()
}

func parseZapLevel(level Level) zapcore.Level {
	if zl, ok := zapLevels[level]; ok {
		return zl
	}
	return zapcore.InfoLevel
}

func fieldsToZapFields(fields []Field) []zap.Field {
	if len(fields) == 0 {
		return nil
	}

	zapFields := make([]zap.Field, len(fields))
	for i, field := range fields {
		zapFields[i] = toZapField(field)
	}
	return zapFields
}

func toZapField(field Field) zap.Field {
	switch v := field.Value.(type) {
	case nil:
		return zap.Skip()
	case string:
		return zap.String(field.Key, v)
	case int:
		return zap.Int(field.Key, v)
	case bool:
		return zap.Bool(field.Key, v)
	case []string:
		return zap.Strings(field.Key, v)
	case time.Duration:
		return zap.Duration(field.Key, v)
	case error:
		return zap.NamedError(field.Key, v)
	default:
		return zap.Any(field.Key, v)
	}
}
