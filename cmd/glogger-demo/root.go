package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/trickstertwo/glogger"
	"github.com/trickstertwo/glogger/adapter/glib"
	"github.com/trickstertwo/glogger/backend/gmessages"
	logrusbackend "github.com/trickstertwo/glogger/backend/logrus"
	slogbackend "github.com/trickstertwo/glogger/backend/slog"
	zapbackend "github.com/trickstertwo/glogger/backend/zap"
	zerologbackend "github.com/trickstertwo/glogger/backend/zerolog"
	"github.com/trickstertwo/glogger/native"
)

// Backend names accepted by --backend.
const (
	backendGLib      = "glib"
	backendGMessages = "gmessages"
	backendZap       = "zap"
	backendZerolog   = "zerolog"
	backendSlog      = "slog"
	backendLogrus    = "logrus"
)

var errUnknownBackend = errors.New("unknown backend")

type options struct {
	variant       string
	domain        string
	level         string
	backend       string
	messagesDebug string
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "glogger-demo",
		Short: "Write sample records through the GLib log adapter",
		Long: `glogger-demo writes one record per level plus a few records that show
domain resolution and message pass-through.

Examples:
  # GLib-style output, debug messages enabled for every domain
  glogger-demo --messages-debug all --level trace

  # Structured variant, domain taken from each record's target
  glogger-demo --variant structured --domain @target --backend zap`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.variant, "variant", "simple", "logger variant: simple, plain or structured")
	f.StringVar(&opts.domain, "domain", "", `domain policy: empty for none, "@target" for the record target, anything else is a fixed domain`)
	f.StringVar(&opts.level, "level", "info", "minimum level: trace, debug, info, warn or error")
	f.StringVar(&opts.backend, "backend", backendGMessages, "native backend: glib, gmessages, zap, zerolog, slog or logrus")
	f.StringVar(&opts.messagesDebug, "messages-debug", "", "sets "+gmessages.EnvMessagesDebug+" before logging (e.g. \"all\")")
	return cmd
}

func run(stdout, stderr io.Writer, opts options) error {
	variant, err := glib.ParseVariant(opts.variant)
	if err != nil {
		return err
	}
	level, err := glogger.ParseLevel(opts.level)
	if err != nil {
		return err
	}
	if opts.messagesDebug != "" {
		if err := os.Setenv(gmessages.EnvMessagesDebug, opts.messagesDebug); err != nil {
			return fmt.Errorf("set %s: %w", gmessages.EnvMessagesDebug, err)
		}
	}
	backend, err := newBackend(opts.backend, stdout, stderr)
	if err != nil {
		return err
	}

	adapter := glib.Custom(variant, glib.ParseDomainPolicy(opts.domain), glib.WithBackend(backend))
	logger, err := glogger.NewBuilder().
		WithAdapter(adapter).
		WithMinLevel(level).
		Build()
	if err != nil {
		return err
	}
	emitSamples(logger)
	return nil
}

// newBackend returns nil for "glib" so the adapter picks its default: real
// GLib when built with the glib tag.
func newBackend(name string, stdout, stderr io.Writer) (native.Backend, error) {
	switch name {
	case backendGLib:
		return nil, nil
	case backendGMessages:
		return gmessages.New(gmessages.Options{Stdout: stdout, Stderr: stderr}), nil
	case backendZap:
		return zapbackend.NewBackend(zapbackend.Config{Writer: stderr}), nil
	case backendZerolog:
		return zerologbackend.NewBackend(zerologbackend.Config{Writer: stderr}), nil
	case backendSlog:
		return slogbackend.NewBackend(slogbackend.Config{Writer: stderr}), nil
	case backendLogrus:
		return logrusbackend.NewBackend(logrusbackend.Config{Writer: stderr}), nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownBackend, name)
	}
}

func emitSamples(l *glogger.Logger) {
	l.Trace().Msg("trace message")
	l.Debug().Msg("Hello, world!")
	l.Info().Msgf("info message: %d", 2)
	l.Warn().Msgf("warning message: %s", "foobar")
	l.Error().Msg("error message, not fatal")

	db := l.Scope("demo-db")
	db.Info().Dur("took", 42*time.Millisecond).Msg("query done")
	db.Warn().Target("demo-override").Msg("target overridden for this call")

	l.Info().Msg("100% of '%d' placeholders pass through")
}
