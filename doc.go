// Package velocity implements an in-process key-value cache with O(1)
// least-recently-used eviction and optional per-entry TTL expiration.
// It is meant to sit in front of an expensive or remote data source
// inside a single process and absorb repeated lookups.
//
// Components:
//   - Cache[V]: the engine. One ordered structure (hash map + intrusive
//     recency list) encodes both content and LRU order; hit/miss/eviction/
//     expiration counters mutate in the same critical section.
//   - Logger: tiny leveled logging interface. Adapters for zap, slog and
//     logrus live under log/.
//   - Hooks: cheap callbacks for evictions, expirations and clears.
//     Async fan-out under hooks/async, slog sink in sloghooks.
//   - codec.Codec[V] + encoded.Cache[V]: optional serialized view for
//     callers that need value isolation instead of shared references.
//
// Expiration is lazy: an expired entry keeps occupying capacity and is
// only detected and removed when touched by Get, Delete or Exists. There
// is no background sweeper, so Len and Keys may report entries that are
// already logically dead.
//
// Usage:
//
//	cc, err := velocity.New[float64](velocity.Options{MaxSize: 1000})
//	_ = cc.Set("BTC-USD", 43250.12, 5*time.Second)
//	v, ok, _ := cc.Get("BTC-USD")
package velocity
