package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/baharkarakas/airdrop-scanner/internal/config"
)

// New builds the process logger. prod writes JSON, everything else writes the
// development console format. A non-empty cfg.File adds a rotated JSON sink.
func New(env string, cfg config.LogConfig) (*zap.Logger, zap.AtomicLevel) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if env != "prod" {
		level.SetLevel(zapcore.DebugLevel)
	}
	if cfg.Level != "" {
		SetLevel(level, cfg.Level)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.LowercaseLevelEncoder

	var console zapcore.Encoder
	if env == "prod" {
		console = zapcore.NewJSONEncoder(encCfg)
	} else {
		console = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}
	cores := []zapcore.Core{zapcore.NewCore(console, zapcore.Lock(os.Stdout), level)}

	if cfg.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    100, // megabytes
			MaxBackups: 7,
			MaxAge:     7, // days
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(rotator), level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), level
}

// SetLevel applies a textual level; unknown values are ignored.
func SetLevel(level zap.AtomicLevel, text string) bool {
	l, err := zapcore.ParseLevel(text)
	if err != nil {
		return false
	}
	level.SetLevel(l)
	return true
}
