package logrus

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/trickstertwo/glogger/native"
)

// Config is an explicit, code-first configuration for a logrus-backed
// native backend.
type Config struct {
	Writer io.Writer    // default: os.Stderr
	JSON   bool         // JSONFormatter instead of TextFormatter
	Level  logrus.Level // zero value is Panic, so it defaults to Debug
}

// NewBackend builds a logrus.Logger from cfg and wraps it.
func NewBackend(cfg Config) native.Backend {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	if cfg.Level == logrus.PanicLevel {
		cfg.Level = logrus.DebugLevel
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(cfg.Level)
	if cfg.JSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	}
	return New(l)
}
