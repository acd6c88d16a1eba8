package velocity

import (
	"container/list"
	"fmt"
	"sync"
	"time"
)

// entry is the value held in the recency list elements. The key lives
// here too because eviction starts from list nodes.
type entry[V any] struct {
	key       string
	value     V
	expiresAt time.Time
	hasExpiry bool // false => never expires
}

// cache is the engine behind Cache[V]: a hash map into an intrusive
// doubly-linked recency list. Front = least recently used, back = most
// recently used. One mutex guards the whole body of every operation so
// order, content and counters always mutate atomically.
type cache[V any] struct {
	mu    sync.Mutex
	items map[string]*list.Element
	order *list.List

	maxSize int
	log     Logger
	hooks   Hooks
	now     func() time.Time // swapped out in tests

	hits        uint64
	misses      uint64
	evictions   uint64
	expirations uint64
}

func newCache[V any](opts Options) (*cache[V], error) {
	if opts.MaxSize <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidMaxSize, opts.MaxSize)
	}

	c := &cache[V]{
		items:   make(map[string]*list.Element, opts.MaxSize),
		order:   list.New(),
		maxSize: opts.MaxSize,
		now:     time.Now,
	}

	// defaults
	c.log = coalesce[Logger](opts.Logger, NopLogger{})
	c.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})

	return c, nil
}

func (c *cache[V]) Get(key string) (V, bool, error) {
	var zero V
	if key == "" {
		return zero, false, ErrEmptyKey
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		c.misses++
		return zero, false, nil
	}

	e := el.Value.(*entry[V])
	if c.expiredLocked(e) {
		c.removeLocked(el, e)
		c.misses++
		c.expirations++
		c.hooks.EntryExpired(e.key, "get")
		c.log.Debug("expired on get", Fields{"key": e.key})
		return zero, false, nil
	}

	c.order.MoveToBack(el)
	c.hits++
	return e.value, true, nil
}

func (c *cache[V]) Set(key string, value V, ttl time.Duration) error {
	if key == "" {
		return ErrEmptyKey
	}
	if ttl < 0 {
		return fmt.Errorf("%w, got %v", ErrNegativeTTL, ttl)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var expiresAt time.Time
	hasExpiry := ttl > 0
	if hasExpiry {
		expiresAt = c.now().Add(ttl)
	}

	if el, ok := c.items[key]; ok {
		// Overwrite in place. An update is not growth, so this path
		// never evicts, even when the old entry had expired.
		e := el.Value.(*entry[V])
		e.value = value
		e.expiresAt = expiresAt
		e.hasExpiry = hasExpiry
		c.order.MoveToBack(el)
		return nil
	}

	if len(c.items) >= c.maxSize {
		c.evictOldestLocked()
	}

	el := c.order.PushBack(&entry[V]{
		key:       key,
		value:     value,
		expiresAt: expiresAt,
		hasExpiry: hasExpiry,
	})
	c.items[key] = el
	return nil
}

func (c *cache[V]) Delete(key string) (V, bool, error) {
	var zero V
	if key == "" {
		return zero, false, ErrEmptyKey
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return zero, false, nil
	}

	e := el.Value.(*entry[V])
	c.removeLocked(el, e)
	if c.expiredLocked(e) {
		// Removed an already-dead entry: the caller sees a miss and the
		// counters record an expiration, not a plain delete.
		c.expirations++
		c.hooks.EntryExpired(e.key, "delete")
		return zero, false, nil
	}
	return e.value, true, nil
}

// Exists checks liveness like Get, including lazy removal of an expired
// entry, but leaves the recency order and the hit/miss counters alone.
func (c *cache[V]) Exists(key string) bool {
	if key == "" {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		return false
	}

	e := el.Value.(*entry[V])
	if c.expiredLocked(e) {
		c.removeLocked(el, e)
		c.expirations++
		c.hooks.EntryExpired(e.key, "exists")
		return false
	}
	return true
}

func (c *cache[V]) Contains(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.items[key]
	return ok
}

func (c *cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := len(c.items)
	c.items = make(map[string]*list.Element, c.maxSize)
	c.order.Init()
	c.hooks.Cleared(removed)
	c.log.Debug("cleared", Fields{"removed": removed})
}

func (c *cache[V]) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]string, 0, c.order.Len())
	for el := c.order.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(*entry[V]).key)
	}
	return out
}

func (c *cache[V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Hits:        c.hits,
		Misses:      c.misses,
		Evictions:   c.evictions,
		Expirations: c.expirations,
		HitRate:     formatHitRate(c.hits, c.misses),
		Size:        len(c.items),
		MaxSize:     c.maxSize,
	}
}

// evictOldestLocked drops the list front. Capacity pressure does not
// inspect liveness: the victim counts as an eviction even when it is
// already past its expiry.
func (c *cache[V]) evictOldestLocked() {
	el := c.order.Front()
	if el == nil {
		return
	}
	e := el.Value.(*entry[V])
	c.removeLocked(el, e)
	c.evictions++
	c.hooks.EntryEvicted(e.key)
	c.log.Debug("evicted LRU entry", Fields{"key": e.key})
}

func (c *cache[V]) expiredLocked(e *entry[V]) bool {
	return e.hasExpiry && c.now().After(e.expiresAt)
}

func (c *cache[V]) removeLocked(el *list.Element, e *entry[V]) {
	delete(c.items, e.key)
	c.order.Remove(el)
}
