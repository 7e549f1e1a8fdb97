// Package slog forwards native GLib log calls to a log/slog Logger.
package slog

import (
	"context"
	"log/slog"

	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/glogger/native"
)

const (
	DomainKey   = "domain"
	CodeFileKey = "code_file"
	CodeLineKey = "code_line"
	CodeFuncKey = "code_func"
)

// LevelCritical sits between slog's Warn and Error; built-in handlers print
// it as "WARN+2".
const LevelCritical = slog.LevelError - 2

// Backend adapts native.Backend to the Go slog API.
// It builds slog.Attrs directly and uses LogAttrs.
type Backend struct {
	l     *slog.Logger
	tsKey string
}

var _ native.Backend = (*Backend)(nil)

func New(l *slog.Logger) *Backend {
	return NewWithTimestampKey(l, "ts")
}

// NewWithTimestampKey sets the key of the xclock timestamp attribute; an
// empty key omits it and leaves timing to the handler.
func NewWithTimestampKey(l *slog.Logger, tsKey string) *Backend {
	if l == nil {
		l = slog.Default()
	}
	return &Backend{l: l, tsKey: tsKey}
}

func (b *Backend) Log(domain string, level native.Flags, message string) {
	lvl := toSlog(level)
	if !b.l.Enabled(context.Background(), lvl) {
		return
	}
	attrs := b.appendCommon(make([]slog.Attr, 0, 2), domain)
	b.l.LogAttrs(context.Background(), lvl, message, attrs...)
}

func (b *Backend) LogStructured(domain string, level native.Flags, file, line, function, message string) {
	lvl := toSlog(level)
	if !b.l.Enabled(context.Background(), lvl) {
		return
	}
	attrs := b.appendCommon(make([]slog.Attr, 0, 5), domain)
	attrs = append(attrs,
		slog.String(CodeFileKey, file),
		slog.String(CodeLineKey, line),
		slog.String(CodeFuncKey, function),
	)
	b.l.LogAttrs(context.Background(), lvl, message, attrs...)
}

func (b *Backend) appendCommon(attrs []slog.Attr, domain string) []slog.Attr {
	if b.tsKey != "" {
		attrs = append(attrs, slog.Time(b.tsKey, xclock.Now()))
	}
	if domain != "" {
		attrs = append(attrs, slog.String(DomainKey, domain))
	}
	return attrs
}

func toSlog(f native.Flags) slog.Level {
	lvl := f.Level()
	switch {
	case lvl&native.LevelError != 0:
		return slog.LevelError
	case lvl&native.LevelCritical != 0:
		return LevelCritical
	case lvl&native.LevelWarning != 0:
		return slog.LevelWarn
	case lvl&(native.LevelMessage|native.LevelInfo) != 0:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
