package score

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/matzehuels/stacker/pkg/errors"
)

// FileStore keeps one JSON file per profile in a data directory.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
	profile string
}

// NewFileStore creates a file-based store for profile.
// If baseDir is empty, defaults to $XDG_DATA_HOME/stacker/scores, falling
// back to ~/.local/share/stacker/scores.
func NewFileStore(baseDir, profile string) (*FileStore, error) {
	if baseDir == "" {
		dir, err := defaultFileDir()
		if err != nil {
			return nil, err
		}
		baseDir = dir
	}
	if err := os.MkdirAll(baseDir, 0o700); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "create score dir")
	}
	return &FileStore{baseDir: baseDir, profile: profile}, nil
}

func defaultFileDir() (string, error) {
	if base := os.Getenv("XDG_DATA_HOME"); base != "" {
		return filepath.Join(base, "stacker", "scores"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".local", "share", "stacker", "scores"), nil
}

// Load reads the profile's score. A missing file means 0.
func (s *FileStore) Load(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "read score file")
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return 0, errors.Wrap(errors.ErrCodeStoreCorrupt, err, "parse score file %s", s.Path())
	}
	return rec.Score, nil
}

// Save writes the profile's score, replacing the file atomically.
func (s *FileStore) Save(ctx context.Context, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(Record{
		Profile:   s.profile,
		Score:     score,
		UpdatedAt: time.Now().UTC(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal score: %w", err)
	}

	tmp := s.Path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeStoreUnavailable, err, "write score file")
	}
	if err := os.Rename(tmp, s.Path()); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeStoreUnavailable, err, "replace score file")
	}
	return nil
}

// Close does nothing for file store.
func (s *FileStore) Close() error { return nil }

// Path returns the score file of the store's profile.
func (s *FileStore) Path() string {
	return filepath.Join(s.baseDir, s.profile+".json")
}

// Dir returns the base directory for score files.
func (s *FileStore) Dir() string {
	return s.baseDir
}

var _ Store = (*FileStore)(nil)
