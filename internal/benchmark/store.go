package benchmark

import (
	"context"
	"errors"
	"time"

	bc "github.com/allegro/bigcache/v3"
	rc "github.com/dgraph-io/ristretto"

	"github.com/stevnnyee/velocity"
)

// Store is the minimal byte-store surface the workloads drive. The
// velocity engine is the subject under test; ristretto and bigcache are
// reference backends for comparison.
type Store interface {
	Name() string
	Set(key string, value []byte, ttl time.Duration) error
	Get(key string) ([]byte, bool, error)
	Close() error
}

type velocityStore struct {
	c velocity.Cache[[]byte]
}

func NewVelocityStore(maxSize int) (Store, error) {
	c, err := velocity.New[[]byte](velocity.Options{MaxSize: maxSize})
	if err != nil {
		return nil, err
	}
	return &velocityStore{c: c}, nil
}

func (s *velocityStore) Name() string { return "velocity" }

func (s *velocityStore) Set(key string, value []byte, ttl time.Duration) error {
	return s.c.Set(key, value, ttl)
}

func (s *velocityStore) Get(key string) ([]byte, bool, error) {
	return s.c.Get(key)
}

func (s *velocityStore) Close() error { return nil }

type ristrettoStore struct {
	c *rc.Cache
}

// NewRistrettoStore sizes a ristretto cache for roughly maxSize entries
// of uniform cost 1, per the library's 10x counters guidance.
func NewRistrettoStore(maxSize int) (Store, error) {
	if maxSize <= 0 {
		return nil, errors.New("ristretto: invalid max size")
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: int64(maxSize) * 10,
		MaxCost:     int64(maxSize),
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &ristrettoStore{c: c}, nil
}

func (s *ristrettoStore) Name() string { return "ristretto" }

func (s *ristrettoStore) Set(key string, value []byte, ttl time.Duration) error {
	s.c.SetWithTTL(key, value, 1, ttl)
	return nil
}

func (s *ristrettoStore) Get(key string) ([]byte, bool, error) {
	v, ok := s.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	b, _ := v.([]byte)
	return b, b != nil, nil
}

func (s *ristrettoStore) Close() error {
	s.c.Wait()
	s.c.Close()
	return nil
}

type bigcacheStore struct {
	c *bc.BigCache
}

// NewBigCacheStore uses lifeWindow as a global TTL; bigcache has no
// per-entry TTL, so workload TTLs are ignored by this backend.
func NewBigCacheStore(lifeWindow time.Duration) (Store, error) {
	c, err := bc.New(context.Background(), bc.DefaultConfig(lifeWindow))
	if err != nil {
		return nil, err
	}
	return &bigcacheStore{c: c}, nil
}

func (s *bigcacheStore) Name() string { return "bigcache" }

func (s *bigcacheStore) Set(key string, value []byte, _ time.Duration) error {
	return s.c.Set(key, value)
}

func (s *bigcacheStore) Get(key string) ([]byte, bool, error) {
	b, err := s.c.Get(key)
	if errors.Is(err, bc.ErrEntryNotFound) {
		return nil, false, nil
	}
	return b, err == nil, err
}

func (s *bigcacheStore) Close() error { return s.c.Close() }
