// Package native describes the entry points of GLib's message logging
// facility as a Go interface. It is the fixed contract between the glib
// adapter and whatever actually writes the message: the real GLib through
// cgo, a pure-Go rendition of its default writer, or a Go logging library.
package native

import "strings"

// Flags mirrors GLib's GLogLevelFlags bit values.
type Flags uint32

const (
	FlagRecursion Flags = 1 << 0
	FlagFatal     Flags = 1 << 1

	// LevelError is always fatal in GLib: the process aborts after the write.
	LevelError    Flags = 1 << 2
	LevelCritical Flags = 1 << 3
	LevelWarning  Flags = 1 << 4
	LevelMessage  Flags = 1 << 5
	LevelInfo     Flags = 1 << 6
	LevelDebug    Flags = 1 << 7

	LevelMask Flags = ^(FlagRecursion | FlagFatal)
)

// Level strips the recursion and fatal flag bits.
func (f Flags) Level() Flags { return f & LevelMask }

func (f Flags) String() string {
	switch f.Level() {
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	case LevelWarning:
		return "WARNING"
	case LevelMessage:
		return "Message"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	default:
		return "LOG"
	}
}

// Backend is the foreign logging entry point pair. Both calls are
// synchronous and must be safe for concurrent use.
//
// An empty domain stands for GLib's NULL domain. Every string argument is
// guaranteed by the caller to be free of NUL bytes, so it converts to a C
// string without truncation.
type Backend interface {
	// Log is g_log(domain, level, "%s", message).
	Log(domain string, level Flags, message string)

	// LogStructured is g_log_structured_standard(domain, level, file, line,
	// function, "%s", message). line is decimal text, as GLib stores it in
	// the CODE_LINE field.
	LogStructured(domain string, level Flags, file, line, function, message string)
}

// Encodable reports whether s survives conversion to a C string, i.e. it
// contains no NUL byte.
func Encodable(s string) bool {
	return strings.IndexByte(s, 0) < 0
}
