package glogger

import (
	"net/url"
	"runtime"
	"strings"
	"time"
)

// Record is a single, already formatted log call as handed to an Adapter.
// It is built per call and must not be retained by adapters after Log returns.
type Record struct {
	At      time.Time
	Level   Level
	Message string

	// Call site. File and Line are always set by Event.Msg/Msgf.
	File     string
	Line     int
	Function string // fully qualified function name, e.g. "example.com/app/db.(*Pool).Get"
	Module   string // package path of Function, e.g. "example.com/app/db"

	// Target is the category of the call: an explicit Event.Target override,
	// else the Scope's declared domain, else Module.
	Target string

	Fields []Field
}

// callSite captures file, line and function of the frame 'skip' levels above
// its caller.
func callSite(skip int) (file string, line int, function string) {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "", 0, ""
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
	}
	return file, line, function
}

// PackagePath extracts the import path from a fully qualified function name
// as reported by runtime.FuncForPC:
//
//	"example.com/app/db.(*Pool).Get" -> "example.com/app/db"
//	"main.main.func1"                -> "main"
//	"gopkg.in/yaml%2ev3.Marshal"     -> "gopkg.in/yaml.v3"
//
// The linker escapes dots in the last path element; PackagePath undoes that.
func PackagePath(function string) string {
	if function == "" {
		return ""
	}
	slash := strings.LastIndexByte(function, '/')
	rest := function[slash+1:]
	dot := strings.IndexByte(rest, '.')
	path := function
	if dot >= 0 {
		path = function[:slash+1+dot]
	}
	if strings.IndexByte(path, '%') >= 0 {
		if unescaped, err := url.PathUnescape(path); err == nil {
			return unescaped
		}
	}
	return path
}
