// Package pkg provides the libraries behind the stacker game.
//
// # Overview
//
// Stacker is a stacking arcade game: a block slides back and forth above the
// tower, the player drops it, and only the part that overlaps the block below
// stays. The pkg directory is organized into three areas:
//
//  1. [core] - The simulation (block geometry, cut algorithm, tower physics)
//  2. [game] - Score, high score and game-over state around a tower
//  3. Infrastructure - [score] stores, [config], [errors], [observability]
//
// # Architecture
//
// One frame of the game:
//
//	frame scheduler (bubbletea tick)
//	         ↓
//	    [game] Controller.Tick(dt)
//	         ↓
//	    [core/tower] Tower.Tick (oscillation + falling blocks)
//
// One "place" action:
//
//	[game] Controller.Place(ctx)
//	     ↓
//	[core/tower] Tower.Place → Layer.Cut → Split
//	     ↓
//	Scene.AddBlock / SyncCamera, score++, [score] Store.Save on record
//
// # Quick Start
//
// Run a game without any front end:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/stacker/pkg/game"
//	    "github.com/matzehuels/stacker/pkg/score"
//	)
//
//	ctrl := game.New(ctx, game.Options{Store: score.NewMemoryStore(0)})
//	ctrl.Tick(0.1)
//	res := ctrl.Place(ctx)
//	fmt.Println(res.Outcome, ctrl.Score()) // placed 1
//
// # Main Packages
//
// [core/block] - Axis-aligned boxes with IDs, categories and the two owner
// mutators (slide and fall).
//
// [core/tower] - Layers, the cut algorithm ([tower.Split]) and the tower that
// oscillates the active block and stacks new layers.
//
// [game] - The controller: Playing → Over → Playing, score counting and high
// score persistence. Results are returned as values; there are no callbacks.
//
// [score] - High-score stores keyed by profile: file, memory, redis, mongo,
// badger and sqlite.
//
// [config] - TOML file plus STACKER_* environment overrides.
//
// [observability] - Hooks for game and store events; no-ops by default.
//
// [core]: https://pkg.go.dev/github.com/matzehuels/stacker/pkg/core
// [core/block]: https://pkg.go.dev/github.com/matzehuels/stacker/pkg/core/block
// [core/tower]: https://pkg.go.dev/github.com/matzehuels/stacker/pkg/core/tower
// [tower.Split]: https://pkg.go.dev/github.com/matzehuels/stacker/pkg/core/tower#Split
// [game]: https://pkg.go.dev/github.com/matzehuels/stacker/pkg/game
// [score]: https://pkg.go.dev/github.com/matzehuels/stacker/pkg/score
// [config]: https://pkg.go.dev/github.com/matzehuels/stacker/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/stacker/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/stacker/pkg/observability
package pkg
