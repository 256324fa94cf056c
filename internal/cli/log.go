// Package cli implements the stacker command-line interface.
//
// The play command runs the game full-screen with bubbletea; sim plays
// headless rounds with a bot; score and config inspect stored state. The CLI
// is built using cobra and logs with the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - play: Play interactively in the terminal
//   - sim: Run seeded bot games and print their scores
//   - score: Show or reset the stored high score
//   - config: Print the config file path or the effective settings
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. While the game
// owns the terminal, log output goes to $XDG_STATE_HOME/stacker/stacker.log.
//
// # Example
//
//	import "github.com/matzehuels/stacker/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stacker/pkg/config"
)

// logFileName is the log written while the game owns the terminal.
const logFileName = "stacker.log"

// newLogger returns a logger writing to w at level, with timestamps like
// "14:32:01.45".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// openLogFile opens the game log in StateDir for appending and returns a
// logger writing to it. The returned func closes the file.
func openLogFile(level log.Level) (*log.Logger, func(), error) {
	dir, err := config.StateDir()
	if err != nil {
		return nil, nil, fmt.Errorf("get state dir: %w", err)
	}
	return openLogFileIn(dir, level)
}

func openLogFileIn(dir string, level log.Level) (*log.Logger, func(), error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return newLogger(f, level), func() { _ = f.Close() }, nil
}

// progress logs how long a batch of simulated rounds took.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Simulated 20 rounds (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches l to ctx. The root command attaches the CLI logger;
// play replaces it with the file logger before the game starts.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default() when there is none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
