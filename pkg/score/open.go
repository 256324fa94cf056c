package score

import (
	"context"
	"slices"
	"time"

	"github.com/matzehuels/stacker/pkg/errors"
)

// Options selects and configures a backend for Open.
type Options struct {
	Backend string
	Profile string

	// Path is the data directory (file, badger) or database file (sqlite).
	Path string

	Redis RedisConfig
	Mongo MongoConfig

	// Timeout bounds the initial connection; zero means DefaultTimeout.
	Timeout time.Duration
}

// Remote reports whether the backend talks to a server.
func (o Options) Remote() bool {
	return o.Backend == BackendRedis || o.Backend == BackendMongo
}

// Open creates the store described by opts. The returned store reports to
// the registered observability store hooks.
func Open(ctx context.Context, opts Options) (Store, error) {
	if opts.Profile == "" {
		opts.Profile = DefaultProfile
	}
	if err := errors.ValidateProfile(opts.Profile); err != nil {
		return nil, err
	}
	if opts.Backend == "" {
		opts.Backend = BackendFile
	}
	if !slices.Contains(Backends, opts.Backend) {
		return nil, errors.New(errors.ErrCodeInvalidBackend, "unknown score backend %q", opts.Backend)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var (
		s   Store
		err error
	)
	switch opts.Backend {
	case BackendFile:
		s, err = NewFileStore(opts.Path, opts.Profile)
	case BackendMemory:
		s = NewMemoryStore(0)
	case BackendNone:
		s = NewNullStore()
	case BackendRedis:
		s, err = NewRedisStore(ctx, opts.Redis, opts.Profile)
	case BackendMongo:
		s, err = NewMongoStore(ctx, opts.Mongo, opts.Profile)
	case BackendBadger:
		s, err = NewBadgerStore(opts.Path, opts.Profile)
	case BackendSQLite:
		s, err = NewSQLiteStore(ctx, opts.Path, opts.Profile)
	}
	if err != nil {
		return nil, err
	}
	return Instrument(s, opts.Backend), nil
}
