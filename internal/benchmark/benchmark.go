// Package benchmark times bulk Set/Get sequences against a Store and
// reports throughput. It backs the `velocity bench` command.
package benchmark

import (
	"fmt"
	"time"
)

// Config describes one workload run.
type Config struct {
	// Ops is the number of operations per phase.
	Ops int
	// KeySpace bounds the distinct keys touched; ops wrap around it.
	KeySpace int
	// ValueSize is the payload length in bytes.
	ValueSize int
	// TTL is applied to every Set. Zero means no expiration.
	TTL time.Duration
}

// Result is the outcome of one phase against one store.
type Result struct {
	Store     string
	Phase     string
	Ops       int
	Duration  time.Duration
	OpsPerSec float64
}

func (r Result) String() string {
	return fmt.Sprintf("%-10s %-6s %8d ops in %8s (%10.0f ops/sec)",
		r.Store, r.Phase, r.Ops, r.Duration.Round(time.Microsecond), r.OpsPerSec)
}

func key(i, keySpace int) string {
	return fmt.Sprintf("key_%d", i%keySpace)
}

func result(s Store, phase string, ops int, d time.Duration) Result {
	return Result{
		Store:     s.Name(),
		Phase:     phase,
		Ops:       ops,
		Duration:  d,
		OpsPerSec: float64(ops) / d.Seconds(),
	}
}

// RunSet times cfg.Ops sequential Set calls.
func RunSet(s Store, cfg Config) (Result, error) {
	value := make([]byte, cfg.ValueSize)
	start := time.Now()
	for i := 0; i < cfg.Ops; i++ {
		if err := s.Set(key(i, cfg.KeySpace), value, cfg.TTL); err != nil {
			return Result{}, fmt.Errorf("%s set: %w", s.Name(), err)
		}
	}
	return result(s, "set", cfg.Ops, time.Since(start)), nil
}

// RunGet seeds cfg.KeySpace keys, then times cfg.Ops sequential Get
// calls wrapping over the key space.
func RunGet(s Store, cfg Config) (Result, error) {
	value := make([]byte, cfg.ValueSize)
	for i := 0; i < cfg.KeySpace; i++ {
		if err := s.Set(key(i, cfg.KeySpace), value, cfg.TTL); err != nil {
			return Result{}, fmt.Errorf("%s seed: %w", s.Name(), err)
		}
	}
	start := time.Now()
	for i := 0; i < cfg.Ops; i++ {
		if _, _, err := s.Get(key(i, cfg.KeySpace)); err != nil {
			return Result{}, fmt.Errorf("%s get: %w", s.Name(), err)
		}
	}
	return result(s, "get", cfg.Ops, time.Since(start)), nil
}

// RunMixed seeds the key space, then times an 80/20 Get/Set mix.
func RunMixed(s Store, cfg Config) (Result, error) {
	value := make([]byte, cfg.ValueSize)
	for i := 0; i < cfg.KeySpace; i++ {
		if err := s.Set(key(i, cfg.KeySpace), value, cfg.TTL); err != nil {
			return Result{}, fmt.Errorf("%s seed: %w", s.Name(), err)
		}
	}
	start := time.Now()
	for i := 0; i < cfg.Ops; i++ {
		if i%5 == 0 {
			if err := s.Set(key(i, cfg.KeySpace), value, cfg.TTL); err != nil {
				return Result{}, fmt.Errorf("%s set: %w", s.Name(), err)
			}
		} else {
			if _, _, err := s.Get(key(i, cfg.KeySpace)); err != nil {
				return Result{}, fmt.Errorf("%s get: %w", s.Name(), err)
			}
		}
	}
	return result(s, "mixed", cfg.Ops, time.Since(start)), nil
}

// RunAll runs the set, get and mixed phases in order.
func RunAll(s Store, cfg Config) ([]Result, error) {
	out := make([]Result, 0, 3)
	for _, run := range []func(Store, Config) (Result, error){RunSet, RunGet, RunMixed} {
		r, err := run(s, cfg)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
