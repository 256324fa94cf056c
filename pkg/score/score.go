// Package score persists the high score of a player profile.
//
// A [Store] is bound to one profile when it is opened and exposes a single
// integer: the best score reached so far. Reading a profile that was never
// saved yields 0, not an error.
//
// # Backends
//
// Several backends are available through [Open]:
//   - file: JSON files in a data directory (default for the CLI)
//   - memory: process-local, for tests and simulations
//   - none: discards writes, always loads 0
//   - redis: a shared key per profile
//   - mongo: one document per profile
//   - badger: an embedded key-value directory
//   - sqlite: a single-table database file
//
// Remote backends (redis, mongo) retry reads and writes that fail with
// transient network errors, up to three attempts with doubling delays.
//
// # Usage
//
//	store, err := score.Open(ctx, score.Options{Backend: score.BackendFile, Profile: "default"})
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	best, err := store.Load(ctx)
package score

import (
	"context"
	"time"
)

// Store is the interface for high-score storage backends.
type Store interface {
	// Load returns the stored high score, or 0 if none was saved.
	Load(ctx context.Context) (int, error)

	// Save replaces the stored high score.
	Save(ctx context.Context, score int) error

	// Close releases connections and file handles.
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendNone   = "none"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
	BackendBadger = "badger"
	BackendSQLite = "sqlite"
)

// Backends lists every supported backend name.
var Backends = []string{
	BackendFile, BackendMemory, BackendNone,
	BackendRedis, BackendMongo, BackendBadger, BackendSQLite,
}

// DefaultProfile is used when no profile is configured.
const DefaultProfile = "default"

// DefaultTimeout bounds connection attempts to remote backends.
const DefaultTimeout = 5 * time.Second

// Record is the persisted form of a high score.
type Record struct {
	Profile   string    `json:"profile" bson:"_id"`
	Score     int       `json:"score" bson:"score"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// key returns the namespaced key used by key-value backends.
func key(profile string) string {
	return "stacker:highscore:" + profile
}
