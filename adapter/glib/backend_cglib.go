//go:build glib

package glib

import (
	"github.com/trickstertwo/glogger/backend/cglib"
	"github.com/trickstertwo/glogger/native"
)

func defaultBackend() native.Backend { return cglib.New() }
