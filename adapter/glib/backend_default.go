//go:build !glib

package glib

import (
	"github.com/trickstertwo/glogger/backend/gmessages"
	"github.com/trickstertwo/glogger/native"
)

// Without the glib build tag records go to a pure-Go rendition of GLib's
// default writer on stdout/stderr.
func defaultBackend() native.Backend { return gmessages.Default() }
