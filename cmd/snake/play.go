package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-arcade/internal/audio"
	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/game"
	"github.com/vovakirdan/snake-arcade/internal/platform/tui"
	"github.com/vovakirdan/snake-arcade/internal/storage"
)

var (
	flagConfig     string
	flagMode       string
	flagDifficulty string
	flagNoSound    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake",
	Long: `Start a snake session. Without --mode, an interactive picker lets
you choose the mode and difficulty.

Controls:
  WASD/Arrows/hjkl - Steer
  P                - Pause
  R                - Restart (after game over)
  M                - Toggle sound
  Q/Ctrl+C         - Quit

Modes:
  classic     - Eat food, grow, avoid walls and yourself
  time_trial  - Score before the clock runs out
  obstacle    - Static obstacles litter the board
  maze        - Reach the exit through walls and portals
  zen         - No death, pure relaxation

Difficulties: easy, medium, hard, extreme (easy wraps at borders)

Examples:
  snake play
  snake play --mode maze --difficulty easy
  snake play --mode time_trial --difficulty extreme
  snake play --config ./my-snake.yaml --no-sound`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Game mode: classic, time_trial, obstacle, maze, zen")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard, extreme")
	playCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable sound effects")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagNoSound {
		gameCfg.Audio.Enabled = false
	}

	// Get terminal size early for the picker menu
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	mode, diff, ok := resolveSelection(width, height)
	if !ok {
		return
	}

	mc, err := game.NewModeConfig(mode, diff, gameCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	sounds := audio.NewSoundManager(gameCfg.Audio)
	if initErr := sounds.Initialize(); initErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", initErr)
	}
	defer sounds.Cleanup()

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	runErr := tui.Run(game.New(mc), store, sounds, rc)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// resolveSelection maps the --mode/--difficulty flags to a session setup,
// falling back to the interactive picker when no mode was given.
// ok is false when the user backed out of the picker.
func resolveSelection(width, height int) (game.Mode, config.DifficultyPreset, bool) {
	if flagMode == "" {
		sel, err := tui.RunMenu(width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if sel == nil {
			return 0, "", false
		}
		return sel.Mode, sel.Difficulty, true
	}

	mode, err := game.ParseMode(flagMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'snake modes' to see available modes.")
		os.Exit(1)
	}
	diff, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return mode, diff, true
}
