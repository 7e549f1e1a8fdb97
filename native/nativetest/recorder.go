// Package nativetest provides a recording native.Backend for tests.
package nativetest

import (
	"sync"

	"github.com/trickstertwo/glogger/native"
)

// Entry is one call received by a Recorder.
type Entry struct {
	Structured bool
	Domain     string
	Level      native.Flags
	File       string
	Line       string
	Function   string
	Message    string
}

// Recorder records every call it receives, in order.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

func (r *Recorder) Log(domain string, level native.Flags, message string) {
	r.append(Entry{Domain: domain, Level: level, Message: message})
}

func (r *Recorder) LogStructured(domain string, level native.Flags, file, line, function, message string) {
	r.append(Entry{
		Structured: true,
		Domain:     domain,
		Level:      level,
		File:       file,
		Line:       line,
		Function:   function,
		Message:    message,
	})
}

func (r *Recorder) append(e Entry) {
	r.mu.Lock()
	r.entries = append(r.entries, e)
	r.mu.Unlock()
}

// Entries returns a copy of the recorded calls.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Last returns the most recent call; ok is false when nothing was recorded.
func (r *Recorder) Last() (e Entry, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.entries) == 0 {
		return Entry{}, false
	}
	return r.entries[len(r.entries)-1], true
}

// Len returns the number of recorded calls.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.entries = nil
	r.mu.Unlock()
}
