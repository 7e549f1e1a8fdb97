package glogger

// Scope carries a declared domain for a group of call sites, typically one
// per package:
//
//	var log = glogger.NewScope("my-app-db")
//
//	log.Warn().Str("table", t).Msg("slow query")
//
// Events created from a Scope default their target to the domain; an explicit
// Event.Target still wins. A Scope created by NewScope resolves the global
// logger at call time, so it may be declared before Init runs.
type Scope struct {
	domain string
	logger *Logger
}

// NewScope returns a Scope bound to the global logger.
func NewScope(domain string) Scope {
	return Scope{domain: domain}
}

// Scope returns a Scope bound to l instead of the global logger.
func (l *Logger) Scope(domain string) Scope {
	return Scope{domain: domain, logger: l}
}

// Domain returns the declared domain.
func (s Scope) Domain() string { return s.domain }

func (s Scope) resolve() *Logger {
	if s.logger != nil {
		return s.logger
	}
	return L()
}

func (s Scope) Trace() *Event { return getEvent(s.resolve(), LevelTrace, s.domain) }
func (s Scope) Debug() *Event { return getEvent(s.resolve(), LevelDebug, s.domain) }
func (s Scope) Info() *Event  { return getEvent(s.resolve(), LevelInfo, s.domain) }
func (s Scope) Warn() *Event  { return getEvent(s.resolve(), LevelWarn, s.domain) }
func (s Scope) Error() *Event { return getEvent(s.resolve(), LevelError, s.domain) }
