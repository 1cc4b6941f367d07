package log

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var base = zap.NewNop()

// Setup builds the JSON logger used by the helpers below. An empty file
// logs to stderr. Every entry carries a session id for this run.
func Setup(level, file string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	out := "stderr"
	if file != "" {
		out = file
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "json"
	cfg.OutputPaths = []string{out}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	Use(l.With(zap.String("session_id", uuid.NewString())))
	return base, nil
}

// Use swaps the underlying logger, e.g. for an observer in tests.
func Use(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	base = l
}

func Sync() { _ = base.Sync() }

func write(level zapcore.Level, kind, action string, err error, fields map[string]any) {
	ce := base.Check(level, action)
	if ce == nil {
		return
	}
	zf := []zap.Field{zap.String("action", action)}
	if kind != "" {
		zf = append(zf, zap.String("kind", kind))
	}
	if err != nil {
		zf = append(zf, zap.String("err", err.Error()))
	}
	if len(fields) > 0 {
		zf = append(zf, zap.Any("fields", fields))
	}
	ce.Write(zf...)
}

func Info(action string, fields map[string]any) { write(zapcore.InfoLevel, "", action, nil, fields) }

// Audit records a change to stored data.
func Audit(action string, fields map[string]any) {
	write(zapcore.InfoLevel, "audit", action, nil, fields)
}
func Warn(action string, fields map[string]any) {
	write(zapcore.WarnLevel, "", action, nil, fields)
}
func Error(action string, err error, fields map[string]any) {
	write(zapcore.ErrorLevel, "", action, err, fields)
}
