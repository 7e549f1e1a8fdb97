package zap

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/glogger/native"
)

// Config is an explicit, code-first configuration for a zap-backed
// native backend.
type Config struct {
	Writer             io.Writer            // default: os.Stderr
	Console            bool                 // console encoder instead of JSON
	Level              zapcore.LevelEnabler // zap's own filter; default lets everything through
	TimestampFieldName string               // default "ts"
}

// NewBackend builds a zap logger from cfg and wraps it.
func NewBackend(cfg Config) native.Backend {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	if cfg.TimestampFieldName == "" {
		cfg.TimestampFieldName = "ts"
	}
	if cfg.Level == nil {
		cfg.Level = zapcore.DebugLevel
	}

	// zap must not add its own time: the backend writes "ts".
	encCfg := zapcore.EncoderConfig{
		TimeKey:        "",
		LevelKey:       "level",
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	var enc zapcore.Encoder
	if cfg.Console {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), cfg.Level)

	return NewWithTimestampKey(zap.New(core), cfg.TimestampFieldName)
}
