package glogger

import "sync/atomic"

// The process-wide logger slot: written at most once, then only read.
var global atomic.Pointer[Logger]

// discard is returned by L before Init; every level is disabled.
var discard = &Logger{minLevel: LevelError + 1}

// Init registers l as the process-wide logger. It succeeds exactly once per
// process; later calls return ErrAlreadyInitialized and leave the first
// logger in place. There is no way to unregister.
func Init(l *Logger) error {
	if l == nil {
		return ErrNoAdapter
	}
	if !global.CompareAndSwap(nil, l) {
		return ErrAlreadyInitialized
	}
	return nil
}

// Initialized reports whether Init has succeeded.
func Initialized() bool { return global.Load() != nil }

// L returns the global Logger. Before Init it returns a logger that drops
// everything: a log call must never fail because setup has not run yet.
func L() *Logger {
	if l := global.Load(); l != nil {
		return l
	}
	return discard
}
