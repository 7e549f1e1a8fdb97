package gmessages

import (
	"io"

	"github.com/trickstertwo/xclock"
)

// EnvMessagesDebug is the variable GLib consults to let INFO and DEBUG
// messages through: "all", or a space separated list of domains.
const EnvMessagesDebug = "G_MESSAGES_DEBUG"

// ErrorHandler receives write errors; logging itself never fails.
type ErrorHandler func(error)

// Options configures a Writer. The zero value behaves like GLib's default
// writer for a program without a registered program name.
type Options struct {
	// Stdout receives INFO and DEBUG lines. Defaults to os.Stdout.
	Stdout io.Writer
	// Stderr receives ERROR, CRITICAL, WARNING and Message lines.
	// Defaults to os.Stderr.
	Stderr io.Writer
	// UseStderr sends every line to Stderr, like g_log_writer_default_set_use_stderr.
	UseStderr bool

	// ProgramName appears in "(name:pid)" prefixes. Defaults to "process".
	ProgramName string
	// PID defaults to os.Getpid().
	PID int

	// DebugDomains replaces G_MESSAGES_DEBUG when non-nil. An entry "all"
	// enables every domain.
	DebugDomains []string

	// Clock stamps each line. Defaults to the process clock (xclock.Now).
	Clock xclock.Clock

	// Abort runs after writing a G_LOG_LEVEL_ERROR or FlagFatal message.
	// Defaults to exiting with status 134, as an aborted GLib process does.
	Abort func()

	ErrorHandler ErrorHandler
}
