//go:build glib

package cglib

/*
#cgo pkg-config: glib-2.0
#include <stdlib.h>
#include <glib.h>

// The message is always passed as a "%s" argument so that '%' in it is
// printed as is.
static void glogger_log(const char *domain, GLogLevelFlags level, const char *message) {
	g_log(domain, level, "%s", message);
}

static void glogger_log_structured(const char *domain, GLogLevelFlags level,
		const char *file, const char *line, const char *func, const char *message) {
	g_log_structured_standard(domain, level, file, line, func, "%s", message);
}
*/
import "C"

import (
	"unsafe"

	"github.com/trickstertwo/glogger/native"
)

// Backend calls g_log and g_log_structured_standard.
type Backend struct{}

var _ native.Backend = Backend{}

// New returns the GLib backend. It holds no state; GLib serializes writes.
func New() Backend { return Backend{} }

func (Backend) Log(domain string, level native.Flags, message string) {
	cdom := cDomain(domain)
	defer freeC(cdom)
	cMessage := C.CString(message)
	defer freeC(cMessage)

	C.glogger_log(cdom, C.GLogLevelFlags(level), cMessage)
}

func (Backend) LogStructured(domain string, level native.Flags, file, line, function, message string) {
	cdom := cDomain(domain)
	defer freeC(cdom)
	cFile := C.CString(file)
	defer freeC(cFile)
	cLine := C.CString(line)
	defer freeC(cLine)
	cFunc := C.CString(function)
	defer freeC(cFunc)
	cMessage := C.CString(message)
	defer freeC(cMessage)

	C.glogger_log_structured(cdom, C.GLogLevelFlags(level), cFile, cLine, cFunc, cMessage)
}

// cDomain returns NULL for the empty domain.
func cDomain(domain string) *C.char {
	if domain == "" {
		return nil
	}
	return C.CString(domain)
}

func freeC(p *C.char) {
	if p != nil {
		C.free(unsafe.Pointer(p))
	}
}
