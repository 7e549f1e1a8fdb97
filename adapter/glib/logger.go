// Package glib adapts glogger records to GLib's message logging facility.
//
// A Logger is an immutable configuration: a Variant, a DomainPolicy and the
// native.Backend it writes to. It implements glogger.Adapter, so it can be
// installed as the process logger with Init or Use:
//
//	if err := glib.Init(glib.Simple(), glogger.LevelDebug); err != nil {
//		return err
//	}
//	glogger.Info().Msgf("listening on %s", addr)
//
// The Simple variant prints the call site in zap's short caller form, the
// file's parent directory and name ("db/pool.go:12: ..."). The Structured
// variant passes the full path from runtime.Caller as CODE_FILE.
//
// Level filtering of debug and info messages happens in GLib itself; set
// G_MESSAGES_DEBUG=all (or a list of domains) to see them.
package glib

import (
	"strconv"

	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/glogger"
	"github.com/trickstertwo/glogger/native"
)

// Logger routes records to a native backend.
type Logger struct {
	variant Variant
	domain  DomainPolicy
	backend native.Backend
}

// Option customizes a Logger at construction.
type Option func(*Logger)

// WithBackend replaces the default backend.
func WithBackend(b native.Backend) Option {
	return func(l *Logger) {
		if b != nil {
			l.backend = b
		}
	}
}

// Simple returns a Logger that prefixes messages with "<file>:<line>: " and
// uses no domain.
func Simple(opts ...Option) *Logger { return Custom(Simple, NoDomain(), opts...) }

// SimplePlain returns a Logger that sends messages unchanged with no domain.
func SimplePlain(opts ...Option) *Logger { return Custom(SimplePlain, NoDomain(), opts...) }

// Structured returns a Logger that sends call-site fields to
// g_log_structured_standard with no domain.
func Structured(opts ...Option) *Logger { return Custom(Structured, NoDomain(), opts...) }

// Custom returns a Logger with an explicit variant and domain policy.
// It panics on an unknown variant.
func Custom(v Variant, domain DomainPolicy, opts ...Option) *Logger {
	if !v.valid() {
		panic("glib: " + v.String() + " is not a logger variant")
	}
	l := &Logger{variant: v, domain: domain}
	for _, o := range opts {
		o(l)
	}
	if l.backend == nil {
		l.backend = defaultBackend()
	}
	return l
}

func (l *Logger) Variant() Variant           { return l.variant }
func (l *Logger) DomainPolicy() DomainPolicy { return l.domain }
func (l *Logger) Backend() native.Backend    { return l.backend }

// Log dispatches rec with exactly one backend call.
//
// Every record must carry its source file and line; glogger's Event always
// fills them, and hand-built records that do not are a programming error, so
// Log panics. It also panics when the message, file or function contain a NUL
// byte. A domain that contains one is dropped instead.
func (l *Logger) Log(rec *glogger.Record) {
	if rec.File == "" {
		panic("glib: record has no source file")
	}
	if rec.Line <= 0 {
		panic("glib: record has no source line")
	}
	level := NativeSeverity(rec.Level)
	domain := resolveDomain(l.domain, rec)

	switch l.variant {
	case Simple:
		mustEncode("file", rec.File)
		caller := zapcore.EntryCaller{Defined: true, File: rec.File, Line: rec.Line}.TrimmedPath()
		buf := make([]byte, 0, len(caller)+len(rec.Message)+24)
		buf = append(buf, caller...)
		buf = append(buf, ": "...)
		l.backend.Log(domain, level, string(appendMessage(buf, rec)))

	case SimplePlain:
		l.backend.Log(domain, level, messageText(rec))

	case Structured:
		function := rec.Function
		if function == "" {
			function = rec.Module
		}
		if function == "" {
			panic("glib: record has no function or module")
		}
		mustEncode("file", rec.File)
		mustEncode("function", function)
		l.backend.LogStructured(domain, level, rec.File, strconv.Itoa(rec.Line), function, messageText(rec))

	default:
		panic("glib: " + l.variant.String() + " is not a logger variant")
	}
}

// messageText is the record message followed by its fields, if any.
func messageText(rec *glogger.Record) string {
	if len(rec.Fields) == 0 {
		mustEncode("message", rec.Message)
		return rec.Message
	}
	return string(appendMessage(make([]byte, 0, len(rec.Message)+16*len(rec.Fields)), rec))
}

func appendMessage(dst []byte, rec *glogger.Record) []byte {
	mustEncode("message", rec.Message)
	dst = append(dst, rec.Message...)
	if len(rec.Fields) == 0 {
		return dst
	}
	n := len(dst)
	dst = glogger.AppendFields(dst, rec.Fields)
	if !native.Encodable(string(dst[n:])) {
		panic("glib: field key contains a NUL byte")
	}
	return dst
}

func mustEncode(what, s string) {
	if !native.Encodable(s) {
		panic("glib: " + what + " contains a NUL byte")
	}
}
