// pixelpilot is a terminal arcade game: fly a twin-gun fighter through an
// arena of drifting asteroids, shoot them for points and earn extra lives.
//
// Usage:
//
//	pixelpilot               - Play
//	pixelpilot config        - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load configuration from a YAML file
//	--log-file <path>     - Write logs to this file ("" disables logging)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pixelpilot",
	Short: "Pixel Pilot - shoot asteroids in your terminal",
	Long: `Pixel Pilot is a real-time arcade game for the terminal. Steer your
fighter around the arena, dodge the asteroids crossing it and shoot them
down. Quick successive hits earn bonus points, every doubling of the score
threshold earns an extra life, and more asteroids join as you keep hitting.

Controls (default):
  W/Up, S/Down   - Thrust forward / backward
  A, D           - Strafe left / right
  J/Left, K/Right - Turn counter-clockwise / clockwise
  Space          - Fire
  P/Esc          - Pause
  Enter/R        - New game (after game over)
  Q/Ctrl+C       - Quit

Examples:
  pixelpilot
  pixelpilot --seed 42
  pixelpilot --config ./my-pixelpilot.yaml --log-level debug
  pixelpilot config`,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.pixelpilot/pixelpilot.log", "Log file path (empty disables logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(configCmd)
}
