package velocity

// Hooks are lightweight callbacks for high-signal cache events.
// Implementations MUST be cheap and non-blocking: the cache invokes them
// while holding its lock, on hot paths. A hook MUST NOT call back into
// the cache that fired it (the engine lock is not re-entrant).
// Wrap with hooks/async when the sink does real work.
type Hooks interface {
	// EntryEvicted fires when an insert at capacity removed the
	// least-recently-used entry. It fires even when the victim had
	// already passed its expiry.
	EntryEvicted(key string)

	// EntryExpired fires when a lazily-expired entry was removed.
	// op ∈ {"get", "delete", "exists"}.
	EntryExpired(key, op string)

	// Cleared fires after Clear with the number of entries removed.
	Cleared(removed int)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) EntryEvicted(string)         {}
func (NopHooks) EntryExpired(string, string) {}
func (NopHooks) Cleared(int)                 {}
