package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stacker/pkg/config"
	"github.com/matzehuels/stacker/pkg/score"
)

// scoreCommand creates the high-score management command.
func (c *CLI) scoreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Manage the stored high score",
	}

	cmd.AddCommand(c.scoreShowCommand())
	cmd.AddCommand(c.scoreResetCommand())

	return cmd
}

// scoreShowCommand creates the "score show" subcommand.
func (c *CLI) scoreShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the high score of the current profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			store, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			high, err := store.Load(ctx)
			if err != nil {
				return err
			}
			loggerFromContext(ctx).Debug("loaded high score", "profile", cfg.Store.Profile, "score", high)
			fmt.Println(renderScore(cfg, high))
			return nil
		},
	}
}

// scoreResetCommand creates the "score reset" subcommand.
func (c *CLI) scoreResetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the high score of the current profile to zero",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			store, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			old, err := store.Load(ctx)
			if err != nil {
				printWarning("Could not read previous score: %v", err)
			}
			if err := store.Save(ctx, 0); err != nil {
				return err
			}
			loggerFromContext(ctx).Debug("reset high score", "profile", cfg.Store.Profile, "previous", old)
			printSuccess("Reset high score of %s", StyleHighlight.Render(cfg.Store.Profile))
			if old > 0 {
				printDetail("Previous best: %d", old)
			} else {
				printInfo("There was no previous score")
			}
			return nil
		},
	}
}

// scoreLocation describes where a backend keeps its data.
func scoreLocation(opts score.Options) string {
	switch opts.Backend {
	case score.BackendRedis:
		return opts.Redis.Addr
	case score.BackendMongo:
		return opts.Mongo.URI
	case score.BackendMemory, score.BackendNone:
		return "—"
	default:
		return opts.Path
	}
}

func renderScore(cfg config.Config, high int) string {
	opts := cfg.ScoreOptions()
	return newTable(func(row, col int) lipgloss.Style {
		switch col {
		case 2:
			return StyleNumber
		case 3:
			return StyleDim
		default:
			return StyleValue
		}
	}, "Profile", "Backend", "Best", "Location").
		Row(opts.Profile, opts.Backend, strconv.Itoa(high), scoreLocation(opts)).
		Render()
}
