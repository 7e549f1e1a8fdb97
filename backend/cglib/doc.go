// Package cglib writes to the real GLib message logging facility through cgo.
//
// It is only built with the glib build tag and needs the glib-2.0
// development files visible to pkg-config:
//
//	go build -tags glib ./...
//
// GLib filters INFO and DEBUG messages itself; export G_MESSAGES_DEBUG=all
// (or a list of domains) to see them.
package cglib
