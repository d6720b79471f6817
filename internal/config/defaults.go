package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultGameConfig returns the default snake configuration.
// Kept in sync with defaults/snake.yaml as the fallback if the embedded
// YAML fails to parse.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Board: BoardConfig{
			Width:  40,
			Height: 20,
		},
		Gameplay: GameplayConfig{
			InitialLength:   3,
			BonusChance:     0.15,
			BonusMultiplier: 5,
		},
		TimeTrial: TimeTrialConfig{
			LimitSeconds: 60,
		},
		Obstacle: ObstacleConfig{
			Count: 15,
		},
		Maze: MazeConfig{
			WallSpacing: 5,
			GapWidth:    4,
			PortalPairs: 2,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.5,
		},
		Difficulties: map[string]DifficultyParams{
			// Move delays 0.12/0.10/0.08/0.06s expressed as ticks at 60 fps
			string(DifficultyEasy):    {MoveEveryTicks: 7, FoodValue: 15, PowerUpSeconds: 12, WallDeath: false},
			string(DifficultyMedium):  {MoveEveryTicks: 6, FoodValue: 10, PowerUpSeconds: 15, WallDeath: true},
			string(DifficultyHard):    {MoveEveryTicks: 5, FoodValue: 8, PowerUpSeconds: 20, WallDeath: true},
			string(DifficultyExtreme): {MoveEveryTicks: 4, FoodValue: 5, PowerUpSeconds: 30, WallDeath: true},
		},
	}
}
