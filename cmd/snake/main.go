// snake is a terminal snake game with multiple modes and difficulties.
//
// Usage:
//
//	snake play               - Play (interactive mode/difficulty picker)
//	snake play --mode maze   - Play a specific mode directly
//	snake modes              - List available modes and difficulties
//	snake scores             - Browse high scores interactively
//	snake scores <mode>      - Print high scores for a mode
//	snake serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.snake-arcade/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - classic terminal snake with modes and power-ups",
	Long: `Snake is a terminal game with five modes, four difficulty levels,
power-ups and persistent high scores.

Available commands:
  play     - Start a session (picker menu when no mode is given)
  modes    - List modes and difficulties
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  snake play
  snake play --mode time_trial --difficulty hard
  snake scores maze
  snake serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake-arcade/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
