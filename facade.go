package glogger

// Facade helpers using the global logger.
// Usage: glogger.Info().Str("k", "v").Msg("hello")

func Trace() *Event { return L().Trace() }
func Debug() *Event { return L().Debug() }
func Info() *Event  { return L().Info() }
func Warn() *Event  { return L().Warn() }
func Error() *Event { return L().Error() }
