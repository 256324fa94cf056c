package score

import (
	"context"
	"time"

	"github.com/matzehuels/stacker/pkg/observability"
)

// instrumented reports every load and save to the registered store hooks.
type instrumented struct {
	Store
	backend string
}

// Instrument wraps s so that its operations are reported to
// observability.Store() under the given backend name.
func Instrument(s Store, backend string) Store {
	return &instrumented{Store: s, backend: backend}
}

func (s *instrumented) Load(ctx context.Context) (int, error) {
	start := time.Now()
	v, err := s.Store.Load(ctx)
	observability.Store().OnLoad(ctx, s.backend, time.Since(start), err)
	return v, err
}

func (s *instrumented) Save(ctx context.Context, score int) error {
	start := time.Now()
	err := s.Store.Save(ctx, score)
	observability.Store().OnSave(ctx, s.backend, time.Since(start), err)
	return err
}
