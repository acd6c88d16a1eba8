// Command velocity is a thin driver around the cache engine: a demo that
// exercises the public API and a benchmark that times bulk Set/Get
// sequences. Flags can be overridden through VELOCITY_* env vars.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:           "velocity",
	Short:         "In-process LRU+TTL cache demo and benchmark driver",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Int("max-size", 1000, "cache capacity bound (entries)")

	viper.SetEnvPrefix("VELOCITY")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(demoCmd, benchCmd)
}

// bindFlags makes viper the single source for flag values, so
// VELOCITY_MAX_SIZE=500 and --max-size=500 are interchangeable.
func bindFlags(cmd *cobra.Command) error {
	if err := viper.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
		return err
	}
	return viper.BindPFlags(cmd.Flags())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
