package score

import "context"

// NullStore is a no-op store that never keeps anything.
// Useful for throwaway games or when saving should be disabled.
type NullStore struct{}

// NewNullStore creates a null store.
func NewNullStore() Store {
	return &NullStore{}
}

// Load always returns 0.
func (s *NullStore) Load(ctx context.Context) (int, error) {
	return 0, nil
}

// Save does nothing.
func (s *NullStore) Save(ctx context.Context, score int) error {
	return nil
}

// Close does nothing.
func (s *NullStore) Close() error {
	return nil
}

// Ensure NullStore implements Store.
var _ Store = (*NullStore)(nil)
