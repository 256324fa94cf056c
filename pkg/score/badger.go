package score

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/dgraph-io/badger/v3"

	"github.com/matzehuels/stacker/pkg/errors"
)

// BadgerStore keeps high scores in an embedded badger directory.
type BadgerStore struct {
	db      *badger.DB
	profile string
}

// NewBadgerStore opens (or creates) a badger database in dir.
// An empty dir opens an in-memory database.
func NewBadgerStore(dir, profile string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "open badger at %q", dir)
	}
	return &BadgerStore{db: db, profile: profile}, nil
}

func (s *BadgerStore) Load(ctx context.Context) (int, error) {
	var rec Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key(s.profile)))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeStoreCorrupt, err, "read high score")
	}
	return rec.Score, nil
}

func (s *BadgerStore) Save(ctx context.Context, score int) error {
	data, err := json.Marshal(Record{Profile: s.profile, Score: score, UpdatedAt: time.Now().UTC()})
	if err != nil {
		return err
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key(s.profile)), data)
	})
	if err != nil {
		return errors.Wrap(errors.ErrCodeStoreUnavailable, err, "write high score")
	}
	return nil
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}

var _ Store = (*BadgerStore)(nil)
