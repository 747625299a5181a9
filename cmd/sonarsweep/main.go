// sonarsweep is a minesweeper variant played by ear: a sonar tone swells as
// the sweeper nears a hidden mine.
//
// Usage:
//
//	sonarsweep               - Play (same as 'sonarsweep play')
//	sonarsweep play          - Play
//	sonarsweep scores        - Show best times and the win/loss tally
//
// Global flags:
//
//	--config <path>    - Config file (default: search ~/.sonarsweep, ./configs)
//	--seed <value>     - RNG seed for reproducible boards (0 = clock per round)
//	--db <path>        - Round history database (overrides config)
//	--log-level <lvl>  - debug, info, warn or error (overrides config)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"chosenoffset.com/sonarsweep/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sonarsweep",
	Short: "SonarSweep - minesweeper with a proximity sonar",
	Long: `SonarSweep is a 6x6 minesweeper played with a metal detector.
The closer the sweeper gets to a hidden mine, the louder the sonar.

Left click reveals a square, right click plants or removes a flag.
Flag every mine and nothing else to win. Press R to start over.

Examples:
  sonarsweep
  sonarsweep --seed 42
  sonarsweep scores --copy`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to round history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadConfig loads the config file and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}
	return cfg, cfg.Validate()
}
