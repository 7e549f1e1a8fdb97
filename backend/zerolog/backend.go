// Package zerolog forwards native GLib log calls to github.com/rs/zerolog.
package zerolog

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/glogger/native"
)

const (
	DomainKey   = "domain"
	CodeFileKey = "code_file"
	CodeLineKey = "code_line"
	CodeFuncKey = "code_func"
)

// Backend bridges native.Backend to rs/zerolog.
//
//   - Fast pre-check using GetLevel() to avoid allocating a zerolog.Event
//     when the level is disabled.
//   - Uses Logger.WithLevel(...) so G_LOG_LEVEL_ERROR never reaches
//     zerolog.Fatal() (which would exit the process).
type Backend struct {
	l zerolog.Logger
}

var _ native.Backend = (*Backend)(nil)

func New(l zerolog.Logger) *Backend {
	return &Backend{l: l}
}

func (b *Backend) Log(domain string, level native.Flags, message string) {
	ev := b.event(domain, level)
	if ev == nil {
		return
	}
	ev.Msg(message)
}

func (b *Backend) LogStructured(domain string, level native.Flags, file, line, function, message string) {
	ev := b.event(domain, level)
	if ev == nil {
		return
	}
	ev.Str(CodeFileKey, file).
		Str(CodeLineKey, line).
		Str(CodeFuncKey, function).
		Msg(message)
}

func (b *Backend) event(domain string, level native.Flags) *zerolog.Event {
	zlvl := mapLevel(level)
	// Fast path: drop early if below logger's min level (no Event allocation).
	if zlvl < b.l.GetLevel() {
		return nil
	}
	ev := b.l.WithLevel(zlvl)
	if ev == nil {
		return nil
	}
	// Ensure RFC3339Nano precision regardless of zerolog.TimeFieldFormat defaults.
	ev.Str("ts", xclock.Now().UTC().Format(time.RFC3339Nano))
	if domain != "" {
		ev.Str(DomainKey, domain)
	}
	return ev
}

// mapLevel converts GLib level flags to zerolog.Level.
// G_LOG_LEVEL_ERROR is mapped to Error to avoid zerolog.Fatal().
func mapLevel(f native.Flags) zerolog.Level {
	lvl := f.Level()
	switch {
	case lvl&(native.LevelError|native.LevelCritical) != 0:
		return zerolog.ErrorLevel
	case lvl&native.LevelWarning != 0:
		return zerolog.WarnLevel
	case lvl&(native.LevelMessage|native.LevelInfo) != 0:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}
