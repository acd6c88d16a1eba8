package velocity

import "time"

// Cache is the thread-safe LRU+TTL cache API. V is the caller's value
// type. All operations are O(1) except Keys, which is O(n).
//
// Every method serializes on one internal lock: the recency order, the
// capacity check and the counters form a single critical section, so no
// caller ever observes the cache transiently over capacity.
type Cache[V any] interface {
	// Get returns the live value for key and refreshes its recency.
	// A miss (absent or expired key) returns ok=false with a nil error;
	// an empty key returns ErrEmptyKey.
	Get(key string) (v V, ok bool, err error)

	// Set stores value under key. ttl == 0 means the entry never
	// expires; ttl < 0 returns ErrNegativeTTL. Overwriting an existing
	// key never evicts. Inserting a new key at capacity unconditionally
	// evicts the least-recently-used entry first.
	Set(key string, value V, ttl time.Duration) error

	// Delete removes key if present. The value is returned only when
	// the entry existed and was still live; deleting an entry that had
	// already expired reads as a miss and counts as an expiration.
	Delete(key string) (v V, ok bool, err error)

	// Exists reports whether key is present and live, lazily removing
	// an expired entry like Get does. Unlike Get it does not refresh
	// recency and does not touch the hit/miss counters, and an empty
	// key simply reports false instead of failing.
	Exists(key string) bool

	// Contains is a raw structural check: is the key physically stored?
	// No expiry check, no side effects. A key can be contained yet
	// already expired; use Exists for liveness.
	Contains(key string) bool

	// Len counts stored entries, including expired ones not yet swept.
	Len() int

	// Clear removes all entries. Counters are kept.
	Clear()

	// Keys snapshots stored keys from least- to most-recently-used,
	// including expired ones not yet swept.
	Keys() []string

	// Stats snapshots the counters and the derived hit rate.
	Stats() Stats
}

// Options tune the cache. Only MaxSize is required; it is fixed for the
// lifetime of the instance.
type Options struct {
	// Required. Capacity bound; must be positive.
	MaxSize int

	Logger Logger // if nil, NopLogger is used
	Hooks  Hooks  // if nil, NopHooks is used
}

func New[V any](opts Options) (Cache[V], error) {
	return newCache[V](opts)
}
