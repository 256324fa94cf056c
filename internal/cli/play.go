package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stacker/internal/metrics"
	"github.com/matzehuels/stacker/internal/render"
	"github.com/matzehuels/stacker/pkg/game"
)

// playOptions holds flags for the play command.
type playOptions struct {
	fps         int
	metricsAddr string
}

// playCommand creates the interactive game command.
func (c *CLI) playCommand() *cobra.Command {
	var opts playOptions

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		Long: `Play stacker in the terminal.

Keys:
  space, enter, click   drop the block
  r                     restart
  q, esc, ctrl+c        quit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPlay(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.fps, "fps", 0, "frames per second (default from config)")
	cmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")

	return cmd
}

func (c *CLI) runPlay(cmd *cobra.Command, opts playOptions) error {
	ctx := cmd.Context()

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if opts.fps > 0 {
		cfg.Display.FPS = opts.fps
	}
	if opts.metricsAddr != "" {
		cfg.Metrics.Addr = opts.metricsAddr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// the terminal belongs to the game; logs go to a file
	logger, closeLog, err := openLogFile(loggerFromContext(ctx).GetLevel())
	if err != nil {
		return err
	}
	defer closeLog()
	ctx = withLogger(ctx, logger)

	var collector *metrics.Collector
	if cfg.Metrics.Addr != "" {
		if collector, err = startMetrics(ctx, cfg.Metrics.Addr); err != nil {
			return err
		}
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	scene := render.NewScene()
	hud := &render.HUD{Profile: cfg.Store.Profile}
	ctrl := game.New(ctx, game.Options{
		Physics: cfg.TowerPhysics(),
		Scene:   scene,
		Display: hud,
		Store:   store,
		Logger:  logger,
	})
	if collector != nil {
		collector.SetHighScore(ctrl.HighScore())
	}

	logger.Info("game started", "profile", cfg.Store.Profile, "backend", cfg.Store.Backend, "high_score", ctrl.HighScore())
	model := newGameModel(ctx, ctrl, scene, hud, gameModelOptions{
		FPS:        cfg.Display.FPS,
		CameraEase: cfg.Display.CameraEase,
	})
	if err := runGame(ctx, model); err != nil {
		return err
	}

	printKeyValue("Score", strconv.Itoa(ctrl.Score()))
	printKeyValue("Best", strconv.Itoa(ctrl.HighScore()))
	return nil
}
