package score

import (
	"context"
	"time"
)

// retryAttempts bounds how often a remote read or write is tried.
const retryAttempts = 3

// retryDelay is the wait after the first failed attempt; it doubles after
// each further one.
var retryDelay = 200 * time.Millisecond

// retry calls op until it succeeds, fails with an error transient does not
// accept, or retryAttempts is reached. The last error is returned as is.
func retry(ctx context.Context, transient func(error) bool, op func() error) error {
	delay := retryDelay
	var err error
	for attempt := 1; ; attempt++ {
		if err = op(); err == nil || !transient(err) || attempt == retryAttempts {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
}
