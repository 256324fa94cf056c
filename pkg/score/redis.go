package score

import (
	"context"
	stderrors "errors"
	"io"
	"net"

	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/stacker/pkg/errors"
)

// RedisConfig configures a redis-backed store.
type RedisConfig struct {
	Addr     string // e.g. localhost:6379
	Password string
	DB       int
}

// RedisStore keeps the high score under a namespaced key.
type RedisStore struct {
	client  *redis.Client
	profile string
}

// NewRedisStore connects to redis and verifies the connection with PING.
func NewRedisStore(ctx context.Context, cfg RedisConfig, profile string) (*RedisStore, error) {
	if cfg.Addr == "" {
		cfg.Addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "connect to redis at %s", cfg.Addr)
	}
	return &RedisStore{client: client, profile: profile}, nil
}

func (s *RedisStore) Load(ctx context.Context) (int, error) {
	var v int
	err := retry(ctx, transient, func() error {
		var err error
		v, err = s.client.Get(ctx, key(s.profile)).Int()
		return err
	})
	if stderrors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeStoreUnavailable, err, "get %s", key(s.profile))
	}
	return v, nil
}

func (s *RedisStore) Save(ctx context.Context, score int) error {
	err := retry(ctx, transient, func() error {
		return s.client.Set(ctx, key(s.profile), score, 0).Err()
	})
	if err != nil {
		return errors.Wrap(errors.ErrCodeStoreUnavailable, err, "set %s", key(s.profile))
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)

// transient reports whether err looks like a dropped or timed-out connection.
func transient(err error) bool {
	var ne net.Error
	return stderrors.As(err, &ne) || stderrors.Is(err, io.EOF)
}
