package gmessages

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trickstertwo/xclock/adapter/frozen"

	"github.com/trickstertwo/glogger/native"
)

type outputs struct {
	stdout, stderr bytes.Buffer
	aborted        int
}

func newTestWriter(o *outputs, debug ...string) *Writer {
	return New(Options{
		Stdout:       &o.stdout,
		Stderr:       &o.stderr,
		ProgramName:  "prog",
		PID:          42,
		DebugDomains: debug,
		Clock:        frozen.New(time.Date(2025, 3, 1, 20, 18, 34, 74_000_000, time.UTC)),
		Abort:        func() { o.aborted++ },
	})
}

func TestWriter_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		domain string
		level  native.Flags
		stderr bool
		want   string
	}{
		{"critical", "", native.LevelCritical, true, "** (prog:42): CRITICAL **: 20:18:34.074: boom\n"},
		{"warning domain", "net", native.LevelWarning, true, "(prog:42): net-WARNING **: 20:18:34.074: boom\n"},
		{"message", "", native.LevelMessage, true, "** Message: 20:18:34.074: boom\n"},
		{"info", "", native.LevelInfo, false, "** INFO: 20:18:34.074: boom\n"},
		{"debug domain", "db", native.LevelDebug, false, "(prog:42): db-DEBUG: 20:18:34.074: boom\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var o outputs
			newTestWriter(&o, "all").Log(tt.domain, tt.level, "boom")

			got, other := o.stdout.String(), o.stderr.String()
			if tt.stderr {
				got, other = other, got
			}
			assert.Equal(t, tt.want, got)
			assert.Empty(t, other)
		})
	}
}

func TestWriter_StructuredOmitsCodeFields(t *testing.T) {
	t.Parallel()

	var o outputs
	newTestWriter(&o).LogStructured("app", native.LevelWarning, "main.go", "12", "main.main", "careful")
	assert.Equal(t, "(prog:42): app-WARNING **: 20:18:34.074: careful\n", o.stderr.String())
}

func TestWriter_PercentIsLiteral(t *testing.T) {
	t.Parallel()

	var o outputs
	newTestWriter(&o).Log("", native.LevelCritical, "100% %s %d")
	assert.Contains(t, o.stderr.String(), ": 100% %s %d\n")
}

func TestWriter_DebugDomains(t *testing.T) {
	t.Parallel()

	var o outputs
	w := newTestWriter(&o, "db", "net")

	w.Log("db", native.LevelInfo, "kept")
	w.Log("net", native.LevelDebug, "kept")
	w.Log("ui", native.LevelInfo, "dropped")
	w.Log("", native.LevelDebug, "dropped")
	w.Log("ui", native.LevelWarning, "warnings are never filtered")

	assert.Equal(t, "db-INFO: 20:18:34.074: kept\n(prog:42): net-DEBUG: 20:18:34.074: kept\n", o.stdout.String())
	assert.Contains(t, o.stderr.String(), "warnings are never filtered")
	assert.Equal(t, Stats{Written: 3, Filtered: 2}, w.Stats())
}

func TestWriter_DebugDomainsFromEnv(t *testing.T) {
	var o outputs
	w := newTestWriter(&o)

	t.Setenv(EnvMessagesDebug, "")
	w.Log("", native.LevelInfo, "hidden")
	assert.Empty(t, o.stdout.String())

	t.Setenv(EnvMessagesDebug, "all")
	w.Log("", native.LevelInfo, "shown")
	assert.Equal(t, "** INFO: 20:18:34.074: shown\n", o.stdout.String())

	o.stdout.Reset()
	t.Setenv(EnvMessagesDebug, "other db")
	w.Log("db", native.LevelDebug, "shown")
	assert.Contains(t, o.stdout.String(), "db-DEBUG")
}

func TestWriter_FatalAborts(t *testing.T) {
	t.Parallel()

	var o outputs
	w := newTestWriter(&o)

	w.Log("", native.LevelCritical, "not fatal")
	assert.Equal(t, 0, o.aborted)

	o.stderr.Reset()
	w.Log("", native.LevelError, "fatal")
	assert.Equal(t, 1, o.aborted)
	assert.Equal(t, "\n** (prog:42): ERROR **: 20:18:34.074: fatal\n", o.stderr.String())

	w.Log("", native.LevelWarning|native.FlagFatal, "fatal warning")
	assert.Equal(t, 2, o.aborted)
}

func TestWriter_UseStderr(t *testing.T) {
	t.Parallel()

	var o outputs
	w := New(Options{
		Stdout:       &o.stdout,
		Stderr:       &o.stderr,
		UseStderr:    true,
		DebugDomains: []string{"all"},
	})
	w.Log("", native.LevelInfo, "info")
	assert.Empty(t, o.stdout.String())
	assert.Contains(t, o.stderr.String(), "** INFO: ")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriter_WriteErrors(t *testing.T) {
	t.Parallel()

	var got []error
	w := New(Options{
		Stderr:       failingWriter{},
		ErrorHandler: func(err error) { got = append(got, err) },
	})
	w.Log("", native.LevelWarning, "lost")

	require.Len(t, got, 1)
	assert.EqualError(t, got[0], "disk full")
	assert.Equal(t, Stats{Errors: 1}, w.Stats())
}

func TestLevelName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ERROR", levelName(native.LevelError))
	assert.Equal(t, "DEBUG", levelName(native.LevelDebug))
	assert.Equal(t, "LOG-0x100", levelName(native.Flags(1<<8)))
}

func TestDefault_IsSingleton(t *testing.T) {
	t.Parallel()

	assert.Same(t, Default(), Default())
}
