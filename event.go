package glogger

import (
	"fmt"
	"sync"
	"time"
)

// Event is a fluent builder (Builder pattern) for a single log entry.
// API: scope.Info().Str("from", ...).Dur("took", d).Msgf("state %s", s)
//
// An Event must be finished with Msg or Msgf exactly once and not used after.
type Event struct {
	l      *Logger
	level  Level
	target string
	fields []Field
}

var eventPool = sync.Pool{
	New: func() any { return &Event{fields: make([]Field, 0, 8)} },
}

func getEvent(l *Logger, level Level, target string) *Event {
	ev := eventPool.Get().(*Event)
	ev.l = l
	ev.level = level
	ev.target = target
	ev.fields = ev.fields[:0]
	return ev
}

func (e *Event) putBack() {
	// allow GC of large backing arrays by capping
	if cap(e.fields) > 128 {
		e.fields = make([]Field, 0, 8)
	}
	e.l = nil
	e.level = 0
	e.target = ""
	eventPool.Put(e)
}

// Enabled reports whether the event will reach the adapter.
func (e *Event) Enabled() bool { return e.l.Enabled(e.level) }

// Target overrides the record target (the GLib domain under the
// record-target policy) for this call only. An empty target is ignored, so a
// Scope's declared domain stays in effect.
func (e *Event) Target(target string) *Event {
	if target != "" {
		e.target = target
	}
	return e
}

// Field builders (zerolog-style)

func (e *Event) Str(k, v string) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindString, Str: v})
	return e
}

func (e *Event) Int(k string, v int) *Event { return e.Int64(k, int64(v)) }

func (e *Event) Int64(k string, v int64) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindInt64, Int64: v})
	return e
}

func (e *Event) Uint64(k string, v uint64) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindUint64, Uint64: v})
	return e
}

func (e *Event) Float64(k string, v float64) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindFloat64, Float64: v})
	return e
}

func (e *Event) Bool(k string, v bool) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindBool, Bool: v})
	return e
}

func (e *Event) Dur(k string, v time.Duration) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindDuration, Dur: v})
	return e
}

func (e *Event) Time(k string, v time.Time) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindTime, Time: v})
	return e
}

func (e *Event) Err(err error) *Event {
	if err == nil {
		return e
	}
	e.fields = append(e.fields, Field{K: "error", Kind: KindError, Err: err})
	return e
}

func (e *Event) Any(k string, v any) *Event {
	e.fields = append(e.fields, Field{K: k, Kind: KindAny, Any: v})
	return e
}

// Msg terminates the builder and emits the event.
func (e *Event) Msg(msg string) {
	e.l.emit(e, msg, 1)
	e.putBack()
}

// Msgf formats with fmt.Sprintf and emits the event. Formatting is skipped
// when the level is disabled.
func (e *Event) Msgf(format string, args ...any) {
	if e.l.Enabled(e.level) {
		e.l.emit(e, fmt.Sprintf(format, args...), 1)
	}
	e.putBack()
}
