package glib

import (
	"fmt"
	"os"

	"github.com/trickstertwo/glogger"
	"github.com/trickstertwo/glogger/native"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvVariant = "GLOGGER_VARIANT" // simple|plain|structured
	EnvDomain  = "GLOGGER_DOMAIN"  // empty: none, "@target": record target, else fixed
	EnvLevel   = "GLOGGER_LEVEL"   // trace|debug|info|warn|error
)

// Config is an explicit, code-first configuration for the GLib adapter.
// One call to Use builds the adapter, wraps it in a glogger.Logger and
// registers it as the process logger.
type Config struct {
	Variant  Variant        // default Simple
	Domain   DomainPolicy   // default NoDomain
	MinLevel glogger.Level  // default LevelInfo (zero value)
	Backend  native.Backend // default: GLib, or its pure-Go rendition without the glib build tag
}

// ConfigFromEnv reads GLOGGER_VARIANT, GLOGGER_DOMAIN and GLOGGER_LEVEL.
// It never reads G_MESSAGES_DEBUG: that toggle belongs to the backend.
func ConfigFromEnv() (Config, error) {
	v, err := ParseVariant(os.Getenv(EnvVariant))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", EnvVariant, err)
	}
	lvl, err := glogger.ParseLevel(os.Getenv(EnvLevel))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", EnvLevel, err)
	}
	return Config{
		Variant:  v,
		Domain:   ParseDomainPolicy(os.Getenv(EnvDomain)),
		MinLevel: lvl,
	}, nil
}

// Use builds a GLib-backed glogger.Logger from cfg and registers it as the
// process logger. If a logger is already registered it returns
// glogger.ErrAlreadyInitialized and the logger that remains active.
func Use(cfg Config) (*glogger.Logger, error) {
	if cfg.Variant == 0 {
		cfg.Variant = Simple
	}
	if !cfg.Variant.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, uint8(cfg.Variant))
	}
	return glogger.UseAdapter(Custom(cfg.Variant, cfg.Domain, WithBackend(cfg.Backend)), cfg.MinLevel)
}

// Init registers l as the process logger, dropping records below min before
// they reach GLib. It fails with glogger.ErrNoAdapter for a nil l and with
// glogger.ErrAlreadyInitialized on any call after the first successful
// registration.
func Init(l *Logger, min glogger.Level) error {
	if l == nil {
		return glogger.ErrNoAdapter
	}
	_, err := glogger.UseAdapter(l, min)
	return err
}
