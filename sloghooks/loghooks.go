// Package sloghooks is a slog-backed velocity.Hooks sink with optional
// sampling for the hot-path events (expirations and evictions).
package sloghooks

import (
	"log/slog"
	"sync/atomic"

	"github.com/stevnnyee/velocity"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	EvictEvery  uint64
	ExpireEvery uint64
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	evictCtr  atomic.Uint64
	expireCtr atomic.Uint64
}

var _ velocity.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) EntryEvicted(key string) {
	if h.l == nil || !sample(h.opts.EvictEvery, &h.evictCtr) {
		return
	}
	h.l.Debug("velocity.entry_evicted", "key", key)
}

func (h *Hooks) EntryExpired(key, op string) {
	if h.l == nil || !sample(h.opts.ExpireEvery, &h.expireCtr) {
		return
	}
	h.l.Debug("velocity.entry_expired",
		"key", key,
		"op", op)
}

func (h *Hooks) Cleared(removed int) {
	if h.l == nil {
		return
	}
	h.l.Info("velocity.cleared", "removed", removed)
}
