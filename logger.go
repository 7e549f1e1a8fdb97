package glogger

import (
	"time"

	"github.com/trickstertwo/xclock"
)

// Logger filters by level, stamps time and call site, and hands one Record
// per call to its Adapter. A Logger is immutable after construction.
type Logger struct {
	adapter    Adapter
	minLevel   Level
	clock      xclock.Clock
	baseFields []Field
}

// Factory: internal constructor.
func newLogger(cfg Config) *Logger {
	return &Logger{
		adapter:  cfg.Adapter,
		minLevel: cfg.MinLevel,
		clock:    cfg.Clock,
	}
}

// Enabled reports whether logs at 'level' would be emitted by this logger.
// Use to avoid building fields in hot paths when disabled.
func (l *Logger) Enabled(level Level) bool {
	return l.adapter != nil && level >= l.minLevel
}

// MinLevel returns the level below which calls are dropped.
func (l *Logger) MinLevel() Level { return l.minLevel }

// Level entry points returning fluent builders. The event target defaults to
// the calling package path.

func (l *Logger) Trace() *Event { return getEvent(l, LevelTrace, "") }
func (l *Logger) Debug() *Event { return getEvent(l, LevelDebug, "") }
func (l *Logger) Info() *Event  { return getEvent(l, LevelInfo, "") }
func (l *Logger) Warn() *Event  { return getEvent(l, LevelWarn, "") }
func (l *Logger) Error() *Event { return getEvent(l, LevelError, "") }

// With returns a child logger whose records carry fs ahead of event fields.
func (l *Logger) With(fs ...Field) *Logger {
	child := *l
	child.baseFields = append(copyFields(nil, l.baseFields), fs...)
	return &child
}

func (l *Logger) now() time.Time {
	if l.clock != nil {
		return l.clock.Now()
	}
	return xclock.Now()
}

// emit builds the Record and dispatches it. skip is the number of frames
// between emit and the user's call site (1 when called from Msg/Msgf).
func (l *Logger) emit(e *Event, msg string, skip int) {
	if !l.Enabled(e.level) {
		return
	}
	file, line, function := callSite(skip + 1)
	module := PackagePath(function)

	target := e.target
	if target == "" {
		target = module
	}

	rec := Record{
		At:       l.now(),
		Level:    e.level,
		Message:  msg,
		File:     file,
		Line:     line,
		Function: function,
		Module:   module,
		Target:   target,
	}
	switch {
	case len(l.baseFields) == 0:
		rec.Fields = e.fields
	case len(e.fields) == 0:
		rec.Fields = l.baseFields
	default:
		merged := make([]Field, 0, len(l.baseFields)+len(e.fields))
		merged = append(merged, l.baseFields...)
		rec.Fields = append(merged, e.fields...)
	}

	l.adapter.Log(&rec)
}

func copyFields(dst, src []Field) []Field {
	if len(src) == 0 {
		return dst
	}
	return append(dst, src...)
}
