package slog

import (
	"io"
	"log/slog"
	"os"

	"github.com/trickstertwo/glogger/native"
)

// Format selects the slog handler format.
type Format uint8

const (
	FormatJSON Format = iota + 1
	FormatText
)

// Config is an explicit, code-first configuration for a slog-backed
// native backend.
type Config struct {
	Writer             io.Writer            // default: os.Stderr
	Format             Format               // JSON (default) or Text
	HandlerOptions     *slog.HandlerOptions // optional; Level defaults to Debug
	TimestampFieldName string               // default "ts"
}

// NewBackend builds a slog handler from cfg and wraps it.
func NewBackend(cfg Config) native.Backend {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	if cfg.TimestampFieldName == "" {
		cfg.TimestampFieldName = "ts"
	}
	opts := slog.HandlerOptions{Level: slog.LevelDebug}
	if cfg.HandlerOptions != nil {
		opts = *cfg.HandlerOptions
		if opts.Level == nil {
			opts.Level = slog.LevelDebug
		}
	}

	var h slog.Handler
	if cfg.Format == FormatText {
		h = slog.NewTextHandler(w, &opts)
	} else {
		h = slog.NewJSONHandler(w, &opts)
	}
	return NewWithTimestampKey(slog.New(h), cfg.TimestampFieldName)
}
