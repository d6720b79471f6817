package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/game"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List all game modes and difficulties",
	Long:  `Shows the available game modes and difficulty presets.`,
	Run:   runModes,
}

func runModes(cmd *cobra.Command, args []string) {
	modes := game.Modes()

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		if len(m.ID()) > maxIDLen {
			maxIDLen = len(m.ID())
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----------")

	// Print modes
	for _, m := range modes {
		fmt.Printf("  %-*s  %s\n", maxIDLen, m.ID(), m.Description())
	}

	fmt.Println()
	fmt.Println("Difficulties:")
	fmt.Println()
	for _, name := range config.PresetNames() {
		fmt.Printf("  %s\n", name)
	}

	fmt.Println()
	fmt.Println("Run 'snake play --mode <id> --difficulty <name>' to play.")
}
