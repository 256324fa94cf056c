package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stacker/internal/sim"
	"github.com/matzehuels/stacker/pkg/score"
)

// simOptions holds flags for the sim command.
type simOptions struct {
	rounds   int
	seed     uint64
	jitter   float64
	fps      int
	maxScore int
	record   bool
}

// simCommand creates the headless simulation command.
func (c *CLI) simCommand() *cobra.Command {
	var opts simOptions

	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Let a bot play and report its scores",
		Long: `Play rounds headlessly with a bot that aims at the block below with a
normally distributed error. Runs are reproducible for a given seed and
settings, which makes sim useful for tuning [physics] values.

By default scores are kept in memory; --record writes new records to the
configured store.`,
		Example: `  # Ten rounds with a sloppy bot
  stacker sim --jitter 1.5

  # A sharper bot on faster blocks
  STACKER_PHYSICS_SPEED=16 stacker sim --rounds 50 --jitter 0.3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSim(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.rounds, "rounds", "n", sim.DefaultRounds, "number of games")
	f.Uint64Var(&opts.seed, "seed", 1, "random seed")
	f.Float64Var(&opts.jitter, "jitter", sim.DefaultJitter, "standard deviation of the aim error")
	f.IntVar(&opts.fps, "fps", sim.DefaultFPS, "simulated frames per second")
	f.IntVar(&opts.maxScore, "max-score", sim.DefaultMaxScore, "stop a round at this score")
	f.BoolVar(&opts.record, "record", false, "save records to the configured store")

	return cmd
}

func (c *CLI) runSim(cmd *cobra.Command, opts simOptions) error {
	ctx := cmd.Context()

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	var store score.Store = score.NewMemoryStore(0)
	if opts.record {
		if store, err = openStore(ctx, cfg); err != nil {
			return err
		}
	}
	defer store.Close()

	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	rep, err := sim.Run(ctx, sim.Options{
		Rounds:   opts.rounds,
		Seed:     opts.seed,
		Jitter:   opts.jitter,
		FPS:      opts.fps,
		MaxScore: opts.maxScore,
		Physics:  cfg.TowerPhysics(),
		Store:    store,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Simulated %d rounds", len(rep.Rounds)))

	fmt.Println(StyleTitle.Render(fmt.Sprintf("Bot rounds (seed %d, jitter %.2f)", opts.seed, opts.jitter)))
	fmt.Println(renderRounds(rep))
	printNewline()
	printKeyValue("Best", strconv.Itoa(rep.Best()))
	printKeyValue("Mean", fmt.Sprintf("%.2f", rep.Mean()))
	printKeyValue("High score", strconv.Itoa(rep.HighScore))
	return nil
}

// renderRounds formats a simulation report as a table.
func renderRounds(rep sim.Report) string {
	rows := make([][]string, len(rep.Rounds))
	for i, rd := range rep.Rounds {
		note := ""
		switch {
		case rd.Capped:
			note = "capped"
		case rd.NewRecord:
			note = "record"
		}
		rows[i] = []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(rd.Score),
			fmt.Sprintf("%.1fs", rd.Seconds),
			fmt.Sprintf("%.2f", rd.MeanOverlap),
			note,
		}
	}

	return newTable(func(row, col int) lipgloss.Style {
		switch {
		case col == 1:
			return StyleNumber
		case col == 4 && rep.Rounds[row].NewRecord:
			return StyleRecord
		case col == 4:
			return StyleDim
		default:
			return StyleValue
		}
	}, "#", "Score", "Time", "Overlap", "").
		Rows(rows...).
		Render()
}
