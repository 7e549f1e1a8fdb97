// Package logrus forwards native GLib log calls to github.com/sirupsen/logrus.
package logrus

import (
	"github.com/sirupsen/logrus"
	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/glogger/native"
)

const (
	DomainKey   = "domain"
	CodeFileKey = "code_file"
	CodeLineKey = "code_line"
	CodeFuncKey = "code_func"
)

// Backend bridges native.Backend to a logrus.Logger. G_LOG_LEVEL_ERROR is
// written at logrus' Error level, never Fatal or Panic.
type Backend struct {
	l *logrus.Logger
}

var _ native.Backend = (*Backend)(nil)

func New(l *logrus.Logger) *Backend {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &Backend{l: l}
}

func (b *Backend) Log(domain string, level native.Flags, message string) {
	lvl := toLogrusLevel(level)
	if !b.l.IsLevelEnabled(lvl) {
		return
	}
	b.entry(domain, 1).Log(lvl, message)
}

func (b *Backend) LogStructured(domain string, level native.Flags, file, line, function, message string) {
	lvl := toLogrusLevel(level)
	if !b.l.IsLevelEnabled(lvl) {
		return
	}
	b.entry(domain, 4).
		WithField(CodeFileKey, file).
		WithField(CodeLineKey, line).
		WithField(CodeFuncKey, function).
		Log(lvl, message)
}

func (b *Backend) entry(domain string, size int) *logrus.Entry {
	fields := make(logrus.Fields, size)
	if domain != "" {
		fields[DomainKey] = domain
	}
	return b.l.WithTime(xclock.Now()).WithFields(fields)
}

func toLogrusLevel(f native.Flags) logrus.Level {
	lvl := f.Level()
	switch {
	case lvl&(native.LevelError|native.LevelCritical) != 0:
		return logrus.ErrorLevel
	case lvl&native.LevelWarning != 0:
		return logrus.WarnLevel
	case lvl&(native.LevelMessage|native.LevelInfo) != 0:
		return logrus.InfoLevel
	default:
		return logrus.DebugLevel
	}
}
