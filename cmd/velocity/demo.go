package main

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/stevnnyee/velocity"
	zaplog "github.com/stevnnyee/velocity/log/zap"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Exercise the cache API with a few ticker prices and print stats",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := bindFlags(cmd); err != nil {
			return err
		}
		return runDemo(viper.GetInt("max-size"))
	},
}

func runDemo(maxSize int) error {
	zl, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer func() { _ = zl.Sync() }()

	cc, err := velocity.New[float64](velocity.Options{
		MaxSize: maxSize,
		Logger:  zaplog.ZapLogger{L: zl},
	})
	if err != nil {
		return err
	}

	zl.Info("seeding ticker prices")
	if err := cc.Set("BTC-USD", 43250.12, 5*time.Second); err != nil {
		return err
	}
	if err := cc.Set("ETH-USD", 2650.50, 10*time.Second); err != nil {
		return err
	}
	if err := cc.Set("ADA-USD", 0.45, 3*time.Second); err != nil {
		return err
	}

	for _, k := range []string{"BTC-USD", "ETH-USD", "ADA-USD"} {
		v, ok, err := cc.Get(k)
		if err != nil {
			return err
		}
		zl.Info("get", zap.String("key", k), zap.Float64("value", v), zap.Bool("ok", ok))
	}

	logStats(zl, cc.Stats())

	zl.Info("waiting for ADA-USD to expire")
	time.Sleep(4 * time.Second)

	_, ok, err := cc.Get("ADA-USD")
	if err != nil {
		return err
	}
	zl.Info("get after 4s", zap.String("key", "ADA-USD"), zap.Bool("ok", ok))
	zl.Info("keys LRU to MRU", zap.Strings("keys", cc.Keys()))

	logStats(zl, cc.Stats())
	return nil
}

func logStats(zl *zap.Logger, st velocity.Stats) {
	zl.Info("stats",
		zap.Uint64("hits", st.Hits),
		zap.Uint64("misses", st.Misses),
		zap.Uint64("evictions", st.Evictions),
		zap.Uint64("expirations", st.Expirations),
		zap.String("hit_rate", st.HitRate),
		zap.Int("size", st.Size),
		zap.Int("max_size", st.MaxSize),
	)
}
