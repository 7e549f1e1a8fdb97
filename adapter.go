package glogger

// Adapter is the logging backend Strategy (e.g., the GLib adapter).
// Log receives a fully populated Record: formatted message, call site,
// resolved target and the single authoritative timestamp taken by the Logger.
// Implementations must be safe for concurrent use and must not retain rec.
type Adapter interface {
	Log(rec *Record)
}

// AdapterFunc adapts a plain function to the Adapter interface.
type AdapterFunc func(rec *Record)

func (f AdapterFunc) Log(rec *Record) { f(rec) }
