package zap

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/trickstertwo/xclock/adapter/frozen"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/glogger/native"
)

var at = time.Date(2024, 12, 31, 23, 59, 59, 123456789, time.UTC)

func freeze(t *testing.T) {
	t.Helper()
	t.Cleanup(frozen.Set(frozen.Config{Time: at}))
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("json unmarshal: %v; line=%s", err, buf.String())
	}
	return m
}

func TestZapBackend_Log_EmitsTSAndDomain(t *testing.T) {
	freeze(t)
	var buf bytes.Buffer
	b := NewBackend(Config{Writer: &buf})

	b.Log("net", native.LevelCritical, "boom")

	m := decode(t, &buf)
	if m["level"] != "error" {
		t.Fatalf("level mismatch: %v", m["level"])
	}
	if m["message"] != "boom" {
		t.Fatalf("message mismatch: %v", m["message"])
	}
	if m["ts"] != at.Format(time.RFC3339Nano) {
		t.Fatalf("ts mismatch: %v", m["ts"])
	}
	if m["domain"] != "net" {
		t.Fatalf("domain mismatch: %v", m["domain"])
	}
	if _, ok := m[CodeFileKey]; ok {
		t.Fatalf("unexpected code fields on g_log call: %v", m)
	}
}

func TestZapBackend_LogStructured_EmitsCodeFields(t *testing.T) {
	freeze(t)
	var buf bytes.Buffer
	b := NewBackend(Config{Writer: &buf})

	b.LogStructured("", native.LevelWarning, "main.go", "12", "main.main", "careful")

	m := decode(t, &buf)
	if m["level"] != "warn" {
		t.Fatalf("level mismatch: %v", m["level"])
	}
	if m[CodeFileKey] != "main.go" || m[CodeLineKey] != "12" || m[CodeFuncKey] != "main.main" {
		t.Fatalf("code fields mismatch: %v", m)
	}
	if _, ok := m[DomainKey]; ok {
		t.Fatalf("NULL domain must be omitted: %v", m)
	}
}

func TestZapBackend_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	b := NewBackend(Config{Writer: &buf, Level: zapcore.WarnLevel})

	b.Log("", native.LevelInfo, "dropped")
	b.LogStructured("", native.LevelDebug, "f.go", "1", "f", "dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %s", buf.String())
	}
}

func TestToZapLevel(t *testing.T) {
	tests := []struct {
		in   native.Flags
		want zapcore.Level
	}{
		{native.LevelError, zapcore.ErrorLevel},
		{native.LevelError | native.FlagFatal, zapcore.ErrorLevel},
		{native.LevelCritical, zapcore.ErrorLevel},
		{native.LevelWarning, zapcore.WarnLevel},
		{native.LevelMessage, zapcore.InfoLevel},
		{native.LevelInfo, zapcore.InfoLevel},
		{native.LevelDebug, zapcore.DebugLevel},
	}
	for _, tt := range tests {
		if got := toZapLevel(tt.in); got != tt.want {
			t.Fatalf("toZapLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNew_NilLoggerIsNop(t *testing.T) {
	b := New(nil)
	if b.l.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatal("nil logger should fall back to a no-op core")
	}
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("Log panicked: %v", r)
		}
	}()
	b.Log("", native.LevelCritical, "nowhere")
	b.LogStructured("d", native.LevelDebug, "f.go", "1", "f", "nowhere")
}
