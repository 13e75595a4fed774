package tenant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/romanlp3005/agent-ia/pkg/logging"
)

// Store is the profile read interface the voice engine consumes.
type Store interface {
	GetProfile(ctx context.Context, id string) (*Profile, error)
}

// CachedStore is a Redis read-through cache in front of the repository.
// Profiles change rarely and are read on every turn of every call, so a
// short TTL keeps Postgres off the hot path.
type CachedStore struct {
	inner  Store
	redis  *redis.Client
	ttl    time.Duration
	logger *logging.Logger
}

// NewCachedStore wraps a store with a Redis cache.
func NewCachedStore(inner Store, redisClient *redis.Client, ttl time.Duration, logger *logging.Logger) *CachedStore {
	if inner == nil {
		panic("tenant: inner store required")
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &CachedStore{inner: inner, redis: redisClient, ttl: ttl, logger: logger}
}

func (s *CachedStore) key(id string) string {
	return fmt.Sprintf("tenant:profile:%s", id)
}

// GetProfile returns the cached profile, falling back to the inner store.
// Cache failures are logged and treated as misses; not-found is never cached.
func (s *CachedStore) GetProfile(ctx context.Context, id string) (*Profile, error) {
	if s.redis != nil {
		data, err := s.redis.Get(ctx, s.key(id)).Bytes()
		switch {
		case err == nil:
			var p Profile
			if jsonErr := json.Unmarshal(data, &p); jsonErr == nil {
				return &p, nil
			}
			s.logger.Warn("tenant cache entry corrupt, refetching", "tenant_id", id)
		case !errors.Is(err, redis.Nil):
			s.logger.Warn("tenant cache read failed", "tenant_id", id, "error", err)
		}
	}

	p, err := s.inner.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(p); err == nil {
			if err := s.redis.Set(ctx, s.key(id), data, s.ttl).Err(); err != nil {
				s.logger.Warn("tenant cache write failed", "tenant_id", id, "error", err)
			}
		}
	}
	return p, nil
}
