package glib

import (
	"github.com/trickstertwo/glogger"
	"github.com/trickstertwo/glogger/native"
)

// NativeSeverity maps a glogger level onto GLib's level flags:
//
//	Trace, Debug -> G_LOG_LEVEL_DEBUG
//	Info         -> G_LOG_LEVEL_INFO
//	Warn         -> G_LOG_LEVEL_WARNING
//	Error        -> G_LOG_LEVEL_CRITICAL
//
// G_LOG_LEVEL_ERROR is never produced: GLib aborts the process after writing
// it, while an error log call must return.
func NativeSeverity(l glogger.Level) native.Flags {
	switch {
	case l <= glogger.LevelDebug:
		return native.LevelDebug
	case l <= glogger.LevelInfo:
		return native.LevelInfo
	case l <= glogger.LevelWarn:
		return native.LevelWarning
	default:
		return native.LevelCritical
	}
}
