package glogger

import "errors"

var (
	// ErrNoAdapter is returned by Builder.Build when no Adapter was set.
	ErrNoAdapter = errors.New("glogger: no adapter configured")

	// ErrAlreadyInitialized is returned by Init when the process-wide logger
	// has already been registered.
	ErrAlreadyInitialized = errors.New("glogger: global logger already initialized")

	// ErrUnknownLevel is returned by ParseLevel for unrecognized input.
	ErrUnknownLevel = errors.New("glogger: unknown level")
)
