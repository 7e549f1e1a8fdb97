// Package gmessages is a pure-Go rendition of GLib's default log writer.
//
// Lines look exactly like those of g_log_writer_default:
//
//	** INFO: 20:18:34.074: src/main.go:12: info message: 2
//	** (process:39403): WARNING **: 20:18:34.076: warning message: foobar
//	my-domain-DEBUG: 20:18:34.076: connected
//
// INFO and DEBUG messages are dropped unless G_MESSAGES_DEBUG is "all" or
// names the message's domain.
package gmessages

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/glogger/native"
)

const (
	alertLevels  = native.LevelError | native.LevelCritical | native.LevelWarning
	prefixLevels = alertLevels | native.LevelDebug
	stderrLevels = alertLevels | native.LevelMessage
	debugLevels  = native.LevelInfo | native.LevelDebug
)

// Writer implements native.Backend on top of io.Writers.
type Writer struct {
	opts Options
	mu   sync.Mutex

	written  atomic.Uint64
	filtered atomic.Uint64
	errors   atomic.Uint64
}

var _ native.Backend = (*Writer)(nil)

var (
	defaultOnce   sync.Once
	defaultWriter *Writer
)

// Default returns the process-wide Writer on os.Stdout and os.Stderr.
func Default() *Writer {
	defaultOnce.Do(func() { defaultWriter = New(Options{}) })
	return defaultWriter
}

// New creates a Writer; unset options take their defaults.
func New(opts Options) *Writer {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.ProgramName == "" {
		opts.ProgramName = "process"
	}
	if opts.PID == 0 {
		opts.PID = os.Getpid()
	}
	if opts.Abort == nil {
		opts.Abort = func() { os.Exit(134) }
	}
	if opts.ErrorHandler == nil {
		opts.ErrorHandler = func(err error) { fmt.Fprintf(os.Stderr, "gmessages: %v\n", err) }
	}
	return &Writer{opts: opts}
}

func (w *Writer) Log(domain string, level native.Flags, message string) {
	w.write(domain, level, message)
}

// LogStructured writes the same line as Log; like GLib's default writer it
// does not print the code location fields.
func (w *Writer) LogStructured(domain string, level native.Flags, file, line, function, message string) {
	w.write(domain, level, message)
}

// Stats is a point-in-time snapshot of the Writer's counters.
type Stats struct {
	Written  uint64
	Filtered uint64
	Errors   uint64
}

func (w *Writer) Stats() Stats {
	return Stats{
		Written:  w.written.Load(),
		Filtered: w.filtered.Load(),
		Errors:   w.errors.Load(),
	}
}

func (w *Writer) write(domain string, level native.Flags, message string) {
	if w.wouldDrop(domain, level) {
		w.filtered.Add(1)
		return
	}
	fatal := level&native.FlagFatal != 0 || level.Level()&native.LevelError != 0

	buf := getBuf()
	defer putBuf(buf)
	w.format(buf, domain, level, message, fatal)

	out := w.opts.Stdout
	if w.opts.UseStderr || level.Level()&stderrLevels != 0 {
		out = w.opts.Stderr
	}
	w.mu.Lock()
	_, err := out.Write(buf.b)
	w.mu.Unlock()
	if err != nil {
		w.errors.Add(1)
		w.opts.ErrorHandler(err)
	} else {
		w.written.Add(1)
	}

	if fatal {
		w.opts.Abort()
	}
}

// wouldDrop mirrors g_log_writer_default_would_drop.
func (w *Writer) wouldDrop(domain string, level native.Flags) bool {
	lvl := level.Level()
	if lvl&debugLevels == 0 || lvl&^debugLevels != 0 {
		return false
	}
	domains := w.opts.DebugDomains
	if domains == nil {
		env := os.Getenv(EnvMessagesDebug)
		if env == "" {
			return true
		}
		domains = strings.Fields(env)
	}
	for _, d := range domains {
		if d == "all" || (domain != "" && d == domain) {
			return false
		}
	}
	return true
}

// format mirrors g_log_writer_format_fields without colors.
func (w *Writer) format(buf *buffer, domain string, level native.Flags, message string, fatal bool) {
	lvl := level.Level()
	if fatal {
		buf.writeByte('\n')
	}
	if domain == "" {
		buf.writeString("** ")
	}
	if lvl&prefixLevels != 0 {
		buf.writeByte('(')
		buf.writeString(w.opts.ProgramName)
		buf.writeByte(':')
		buf.b = strconv.AppendInt(buf.b, int64(w.opts.PID), 10)
		buf.writeString("): ")
	}
	if domain != "" {
		buf.writeString(domain)
		buf.writeByte('-')
	}
	buf.writeString(levelName(lvl))
	if lvl&alertLevels != 0 {
		buf.writeString(" **")
	}
	buf.writeString(": ")
	buf.b = w.now().AppendFormat(buf.b, "15:04:05.000")
	buf.writeString(": ")
	buf.writeString(message)
	buf.writeByte('\n')
}

func (w *Writer) now() time.Time {
	if w.opts.Clock != nil {
		return w.opts.Clock.Now()
	}
	return xclock.Now()
}

func levelName(lvl native.Flags) string {
	switch {
	case lvl&native.LevelError != 0:
		return "ERROR"
	case lvl&native.LevelCritical != 0:
		return "CRITICAL"
	case lvl&native.LevelWarning != 0:
		return "WARNING"
	case lvl&native.LevelMessage != 0:
		return "Message"
	case lvl&native.LevelInfo != 0:
		return "INFO"
	case lvl&native.LevelDebug != 0:
		return "DEBUG"
	default:
		return "LOG-0x" + strconv.FormatUint(uint64(lvl), 16)
	}
}
