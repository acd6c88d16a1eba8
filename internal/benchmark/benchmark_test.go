package benchmark

import (
	"testing"
	"time"
)

func smokeConfig() Config {
	return Config{Ops: 2000, KeySpace: 500, ValueSize: 32, TTL: time.Minute}
}

func TestVelocityStoreAllPhases(t *testing.T) {
	s, err := NewVelocityStore(500)
	if err != nil {
		t.Fatalf("NewVelocityStore: %v", err)
	}
	defer s.Close()

	results, err := RunAll(s, smokeConfig())
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for _, r := range results {
		if r.Store != "velocity" {
			t.Fatalf("store=%q, want velocity", r.Store)
		}
		if r.Ops != 2000 || r.OpsPerSec <= 0 {
			t.Fatalf("bad result: %+v", r)
		}
	}
}

func TestGetPhaseHitsSeededKeys(t *testing.T) {
	s, err := NewVelocityStore(100)
	if err != nil {
		t.Fatalf("NewVelocityStore: %v", err)
	}
	defer s.Close()

	cfg := Config{Ops: 300, KeySpace: 100, ValueSize: 8, TTL: 0}
	if _, err := RunGet(s, cfg); err != nil {
		t.Fatalf("RunGet: %v", err)
	}
	// Every Get wraps the seeded key space, so all of them must hit.
	if v, ok, err := s.Get("key_0"); err != nil || !ok || len(v) != 8 {
		t.Fatalf("seeded key missing: ok=%v err=%v len=%d", ok, err, len(v))
	}
}

func TestRistrettoStoreRoundTrip(t *testing.T) {
	s, err := NewRistrettoStore(100)
	if err != nil {
		t.Fatalf("NewRistrettoStore: %v", err)
	}
	defer s.Close()

	if err := s.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	// Ristretto admits writes asynchronously; give the buffers a moment.
	deadline := time.Now().Add(time.Second)
	for {
		if v, ok, _ := s.Get("k"); ok && string(v) == "v" {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("value never became visible")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestBigCacheStoreRoundTrip(t *testing.T) {
	s, err := NewBigCacheStore(time.Minute)
	if err != nil {
		t.Fatalf("NewBigCacheStore: %v", err)
	}
	defer s.Close()

	if err := s.Set("k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, ok, err := s.Get("k"); err != nil || !ok || string(v) != "v" {
		t.Fatalf("Get: v=%q ok=%v err=%v", v, ok, err)
	}
	if _, ok, err := s.Get("missing"); err != nil || ok {
		t.Fatalf("miss expected: ok=%v err=%v", ok, err)
	}
}
