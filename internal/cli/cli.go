// Package cli implements the stacker command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stacker/internal/metrics"
	"github.com/matzehuels/stacker/pkg/buildinfo"
	"github.com/matzehuels/stacker/pkg/config"
	"github.com/matzehuels/stacker/pkg/observability"
	"github.com/matzehuels/stacker/pkg/score"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "stacker"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	profile    string
	backend    string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Stacker is a tower stacking game for the terminal",
		Long:         `Stacker is an arcade game: a block slides back and forth above the tower and you drop it. Whatever hangs over the edge falls off, and the next block is only as big as what stayed.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/stacker/config.toml)")
	pf.StringVarP(&c.profile, "profile", "p", "", "high-score profile")
	pf.StringVar(&c.backend, "store", "", fmt.Sprintf("high-score backend %v", score.Backends))
	_ = root.RegisterFlagCompletionFunc("store", cobra.FixedCompletions(score.Backends, cobra.ShellCompDirectiveNoFileComp))

	root.AddCommand(c.playCommand())
	root.AddCommand(c.simCommand())
	root.AddCommand(c.scoreCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Shared Setup
// =============================================================================

// loadConfig reads the config file and environment, then applies the
// persistent flags.
func (c *CLI) loadConfig() (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if c.profile != "" {
		cfg.Store.Profile = c.profile
	}
	if c.backend != "" {
		cfg.Store.Backend = c.backend
	}
	return cfg, cfg.Validate()
}

// openStore opens the configured high-score store, showing a spinner while
// connecting to remote backends.
func openStore(ctx context.Context, cfg config.Config) (score.Store, error) {
	opts := cfg.ScoreOptions()
	if !opts.Remote() {
		return score.Open(ctx, opts)
	}

	spinner := newSpinner(ctx, os.Stderr, fmt.Sprintf("Connecting to %s...", opts.Backend))
	spinner.Start()
	store, err := score.Open(ctx, opts)
	if err != nil {
		spinner.StopWithError(fmt.Sprintf("Could not connect to %s", opts.Backend))
		return nil, err
	}
	spinner.Stop()
	loggerFromContext(ctx).Debug("connected", "backend", opts.Backend, "profile", opts.Profile)
	return store, nil
}

// startMetrics registers Prometheus hooks and serves them on addr until ctx
// is done. The listener is opened before returning so address errors surface
// immediately.
func startMetrics(ctx context.Context, addr string) (*metrics.Collector, error) {
	logger := loggerFromContext(ctx)
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.New(reg)
	observability.SetGameHooks(collector)
	observability.SetStoreHooks(collector)

	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics listen %s: %w", addr, err)
	}

	srv := metrics.NewServer(collector, reg, logger)
	go func() {
		if err := srv.Serve(ctx, ln); err != nil {
			logger.Error("metrics server stopped", "error", err)
		}
	}()
	logger.Info("metrics available", "addr", ln.Addr().String())
	return collector, nil
}
