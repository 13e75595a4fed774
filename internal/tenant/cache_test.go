package tenant

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type countingStore struct {
	profile *Profile
	err     error
	calls   int
}

func (s *countingStore) GetProfile(ctx context.Context, id string) (*Profile, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.profile, nil
}

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestCachedStoreReadThrough(t *testing.T) {
	inner := &countingStore{profile: &Profile{ID: "t1", Name: "Glow Spa"}}
	store := NewCachedStore(inner, newTestRedis(t), time.Minute, nil)

	for i := 0; i < 3; i++ {
		p, err := store.GetProfile(context.Background(), "t1")
		if err != nil {
			t.Fatalf("GetProfile: %v", err)
		}
		if p.Name != "Glow Spa" {
			t.Errorf("unexpected name %q", p.Name)
		}
	}

	if inner.calls != 1 {
		t.Errorf("expected a single repository hit, got %d", inner.calls)
	}
}

func TestCachedStoreDoesNotCacheNotFound(t *testing.T) {
	inner := &countingStore{err: ErrNotFound}
	store := NewCachedStore(inner, newTestRedis(t), time.Minute, nil)

	for i := 0; i < 2; i++ {
		if _, err := store.GetProfile(context.Background(), "missing"); err != ErrNotFound {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	}
	if inner.calls != 2 {
		t.Errorf("expected repository hit per call, got %d", inner.calls)
	}
}

func TestCachedStoreNilRedisFallsThrough(t *testing.T) {
	inner := &countingStore{profile: &Profile{ID: "t1"}}
	store := NewCachedStore(inner, nil, time.Minute, nil)

	if _, err := store.GetProfile(context.Background(), "t1"); err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if inner.calls != 1 {
		t.Errorf("expected one call, got %d", inner.calls)
	}
}
