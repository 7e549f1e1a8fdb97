package zerolog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/glogger/native"
)

// Config is an explicit, code-first configuration for a zerolog-backed
// native backend.
type Config struct {
	Writer            io.Writer     // default: os.Stderr
	Console           bool          // pretty console output instead of JSON
	ConsoleTimeFormat string        // only used if Console==true; default time.RFC3339Nano
	Level             zerolog.Level // zerolog's own filter; the zero value is Debug
}

// NewBackend builds a zerolog.Logger from cfg and wraps it.
func NewBackend(cfg Config) native.Backend {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	var zl zerolog.Logger
	if cfg.Console {
		cw := zerolog.ConsoleWriter{Out: w, TimeFormat: cfg.ConsoleTimeFormat}
		if cw.TimeFormat == "" {
			cw.TimeFormat = time.RFC3339Nano
		}
		// The backend writes its own "ts"; align the console's leading
		// timestamp column with it.
		zerolog.TimestampFieldName = "ts"
		zl = zerolog.New(cw)
	} else {
		zl = zerolog.New(w)
	}
	return New(zl.Level(cfg.Level))
}
