package glogger

// resetGlobal clears the process-wide slot so tests can exercise Init more
// than once. Tests that call it must not run in parallel.
func resetGlobal() { global.Store(nil) }
