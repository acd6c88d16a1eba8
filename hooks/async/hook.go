// Package asynchook decouples hook sinks from the cache hot path.
// Events are queued on a bounded channel and delivered by worker
// goroutines; when the queue is full, events are dropped rather than
// blocking a cache operation (the engine fires hooks under its lock).
//
// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{ExpireEvery: 10})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	cc, _ := velocity.New[User](velocity.Options{
//	    MaxSize: 10_000,
//	    Hooks:   hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"

	"github.com/stevnnyee/velocity"
)

type Hooks struct {
	inner velocity.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ velocity.Hooks = (*Hooks)(nil)

func New(inner velocity.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) EntryEvicted(key string)     { h.try(func() { h.inner.EntryEvicted(key) }) }
func (h *Hooks) EntryExpired(key, op string) { h.try(func() { h.inner.EntryExpired(key, op) }) }
func (h *Hooks) Cleared(removed int)         { h.try(func() { h.inner.Cleared(removed) }) }
