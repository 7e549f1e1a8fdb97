// Package zap forwards native GLib log calls to go.uber.org/zap, for
// processes that run the glib adapter without GLib itself.
package zap

import (
	"time"

	"github.com/trickstertwo/xclock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/glogger/native"
)

// Field keys written next to the message. The code_* keys carry GLib's
// CODE_FILE, CODE_LINE and CODE_FUNC structured fields.
const (
	DomainKey   = "domain"
	CodeFileKey = "code_file"
	CodeLineKey = "code_line"
	CodeFuncKey = "code_func"
)

// Backend bridges native.Backend to a zap.Logger.
//
//   - Uses Logger.Check(level, msg) to skip field building when disabled.
//   - Writes an RFC3339Nano "ts" string taken from xclock, so frozen clocks
//     are respected.
//   - Maps G_LOG_LEVEL_ERROR to zap's Error level: a library must not make
//     zap call os.Exit.
type Backend struct {
	l     *zap.Logger
	tsKey string
}

var _ native.Backend = (*Backend)(nil)

// New creates a backend for the provided zap logger.
func New(l *zap.Logger) *Backend {
	return NewWithTimestampKey(l, "ts")
}

// NewWithTimestampKey lets callers override the timestamp field key
// (default "ts"). An empty key leaves timestamps to zap's encoder.
func NewWithTimestampKey(l *zap.Logger, tsKey string) *Backend {
	if l == nil {
		l = zap.NewNop()
	}
	return &Backend{l: l, tsKey: tsKey}
}

func (b *Backend) Log(domain string, level native.Flags, message string) {
	ce := b.l.Check(toZapLevel(level), message)
	if ce == nil {
		return
	}
	zfs := make([]zap.Field, 0, 2)
	zfs = b.appendCommon(zfs, domain)
	ce.Write(zfs...)
}

func (b *Backend) LogStructured(domain string, level native.Flags, file, line, function, message string) {
	ce := b.l.Check(toZapLevel(level), message)
	if ce == nil {
		return
	}
	zfs := make([]zap.Field, 0, 5)
	zfs = b.appendCommon(zfs, domain)
	zfs = append(zfs,
		zap.String(CodeFileKey, file),
		zap.String(CodeLineKey, line),
		zap.String(CodeFuncKey, function),
	)
	ce.Write(zfs...)
}

func (b *Backend) appendCommon(zfs []zap.Field, domain string) []zap.Field {
	if b.tsKey != "" {
		zfs = append(zfs, zap.String(b.tsKey, xclock.Now().UTC().Format(time.RFC3339Nano)))
	}
	if domain != "" {
		zfs = append(zfs, zap.String(DomainKey, domain))
	}
	return zfs
}

func toZapLevel(f native.Flags) zapcore.Level {
	lvl := f.Level()
	switch {
	case lvl&(native.LevelError|native.LevelCritical) != 0:
		// Avoid Fatal/DPanic to prevent exits in library code.
		return zapcore.ErrorLevel
	case lvl&native.LevelWarning != 0:
		return zapcore.WarnLevel
	case lvl&(native.LevelMessage|native.LevelInfo) != 0:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}
