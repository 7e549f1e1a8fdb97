package glib

import (
	"errors"
	"fmt"
	"strings"
)

// Variant selects how a record is handed to the backend.
type Variant uint8

const (
	// Simple prefixes the message with "<file>:<line>: " and uses g_log.
	Simple Variant = iota + 1
	// SimplePlain sends the message unchanged through g_log.
	SimplePlain
	// Structured keeps file, line and function as discrete fields and uses
	// g_log_structured_standard.
	Structured
)

var ErrUnknownVariant = errors.New("glib: unknown logger variant")

func (v Variant) String() string {
	switch v {
	case Simple:
		return "simple"
	case SimplePlain:
		return "plain"
	case Structured:
		return "structured"
	default:
		return fmt.Sprintf("variant(%d)", uint8(v))
	}
}

func (v Variant) valid() bool { return v >= Simple && v <= Structured }

// ParseVariant accepts simple|plain|simple-plain|structured, case-insensitive.
// The empty string parses as Simple.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "simple", "":
		return Simple, nil
	case "plain", "simple-plain", "simpleplain":
		return SimplePlain, nil
	case "structured":
		return Structured, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
}
