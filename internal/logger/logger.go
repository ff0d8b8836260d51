package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.SugaredLogger
	level  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

func init() {
	cfg := zap.Config{
		Level:             level,
		Encoding:          "console",
		EncoderConfig:     zap.NewDevelopmentEncoderConfig(),
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
		DisableStacktrace: true,
	}
	l, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	logger = l.Sugar()
}

// L returns the process-wide sugared logger.
func L() *zap.SugaredLogger {
	return logger
}

// SetLevel adjusts the log level at runtime.
func SetLevel(lv zapcore.Level) {
	level.SetLevel(lv)
}

// Sync flushes buffered log entries; call before exit.
func Sync() {
	_ = logger.Sync()
}
