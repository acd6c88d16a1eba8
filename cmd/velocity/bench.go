package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stevnnyee/velocity/internal/benchmark"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time bulk set/get/mixed sequences and report throughput",
	Long: `Runs sequential set, get and 80/20 mixed workloads against the
velocity engine and, optionally, against ristretto and bigcache as
reference byte stores. Note that bigcache has no per-entry TTL, so the
workload TTL only applies to velocity and ristretto.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := bindFlags(cmd); err != nil {
			return err
		}
		return runBench(benchmark.Config{
			Ops:       viper.GetInt("ops"),
			KeySpace:  viper.GetInt("max-size"),
			ValueSize: viper.GetInt("value-size"),
			TTL:       viper.GetDuration("ttl"),
		}, viper.GetInt("max-size"), viper.GetBool("compare"))
	},
}

func init() {
	benchCmd.Flags().Int("ops", 50000, "operations per phase")
	benchCmd.Flags().Int("value-size", 64, "payload size in bytes")
	benchCmd.Flags().Duration("ttl", 10*time.Second, "ttl applied to every set")
	benchCmd.Flags().Bool("compare", false, "also run ristretto and bigcache")
}

func runBench(cfg benchmark.Config, maxSize int, compare bool) error {
	stores := make([]benchmark.Store, 0, 3)

	vs, err := benchmark.NewVelocityStore(maxSize)
	if err != nil {
		return err
	}
	stores = append(stores, vs)

	if compare {
		rs, err := benchmark.NewRistrettoStore(maxSize)
		if err != nil {
			return err
		}
		bs, err := benchmark.NewBigCacheStore(cfg.TTL)
		if err != nil {
			return err
		}
		stores = append(stores, rs, bs)
	}

	for _, s := range stores {
		results, err := benchmark.RunAll(s, cfg)
		if err != nil {
			return err
		}
		for _, r := range results {
			fmt.Println(r)
		}
		if err := s.Close(); err != nil {
			return fmt.Errorf("close %s: %w", s.Name(), err)
		}
	}
	return nil
}
