// Package encoded is a typed view over a velocity byte cache. Values are
// run through a codec.Codec[V] on the way in and out, so callers get a
// fresh copy on every Get instead of a shared reference. Use it when V
// holds mutable state (slices, maps, pointers) that must not alias the
// cached copy.
//
// LRU order, TTL expiry and metrics are those of the underlying
// velocity.Cache[[]byte]; this package adds no state of its own.
package encoded

import (
	"time"

	"github.com/stevnnyee/velocity"
	"github.com/stevnnyee/velocity/codec"
)

type Cache[V any] struct {
	inner velocity.Cache[[]byte]
	codec codec.Codec[V]
}

// New wraps inner with a codec. Both must be non-nil.
func New[V any](inner velocity.Cache[[]byte], c codec.Codec[V]) *Cache[V] {
	return &Cache[V]{inner: inner, codec: c}
}

// Get decodes the cached payload into a fresh V. A payload the codec
// cannot decode is surfaced as an error, not dropped: the bytes were
// stored by this process, so corruption here is a programming bug.
func (c *Cache[V]) Get(key string) (V, bool, error) {
	var zero V
	raw, ok, err := c.inner.Get(key)
	if err != nil || !ok {
		return zero, false, err
	}
	v, err := c.codec.Decode(raw)
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

func (c *Cache[V]) Set(key string, value V, ttl time.Duration) error {
	payload, err := c.codec.Encode(value)
	if err != nil {
		return err
	}
	return c.inner.Set(key, payload, ttl)
}

func (c *Cache[V]) Delete(key string) (V, bool, error) {
	var zero V
	raw, ok, err := c.inner.Delete(key)
	if err != nil || !ok {
		return zero, false, err
	}
	v, err := c.codec.Decode(raw)
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

func (c *Cache[V]) Exists(key string) bool   { return c.inner.Exists(key) }
func (c *Cache[V]) Contains(key string) bool { return c.inner.Contains(key) }
func (c *Cache[V]) Len() int                 { return c.inner.Len() }
func (c *Cache[V]) Clear()                   { c.inner.Clear() }
func (c *Cache[V]) Keys() []string           { return c.inner.Keys() }
func (c *Cache[V]) Stats() velocity.Stats    { return c.inner.Stats() }
