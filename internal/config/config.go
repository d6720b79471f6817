// Package config provides YAML-based game configuration loading and
// difficulty management for the snake arcade.
package config

import "fmt"

// GameConfig contains all tunable parameters for a snake session.
type GameConfig struct {
	Board        BoardConfig                 `yaml:"board"`
	Gameplay     GameplayConfig              `yaml:"gameplay"`
	TimeTrial    TimeTrialConfig             `yaml:"time_trial"`
	Obstacle     ObstacleConfig              `yaml:"obstacle"`
	Maze         MazeConfig                  `yaml:"maze"`
	Audio        AudioConfig                 `yaml:"audio"`
	Difficulties map[string]DifficultyParams `yaml:"difficulties"`
}

// BoardConfig defines the playfield dimensions in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GameplayConfig defines parameters shared by all modes.
type GameplayConfig struct {
	InitialLength   int     `yaml:"initial_length"`
	BonusChance     float64 `yaml:"bonus_chance"`     // Probability a spawned food is a bonus
	BonusMultiplier int     `yaml:"bonus_multiplier"` // Bonus food value = base value * this
}

// TimeTrialConfig defines Time Trial mode parameters.
type TimeTrialConfig struct {
	LimitSeconds int `yaml:"limit_seconds"`
}

// ObstacleConfig defines Obstacle mode parameters.
type ObstacleConfig struct {
	Count int `yaml:"count"`
}

// MazeConfig defines Maze mode parameters.
type MazeConfig struct {
	WallSpacing int `yaml:"wall_spacing"` // Rows/columns between internal walls
	GapWidth    int `yaml:"gap_width"`    // Width of the opening in each internal wall
	PortalPairs int `yaml:"portal_pairs"`
}

// AudioConfig defines sound settings.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"` // 0.0 to 1.0
}

// DifficultyParams holds the per-difficulty rule parameters.
type DifficultyParams struct {
	MoveEveryTicks int  `yaml:"move_every_ticks"` // Simulation ticks between snake moves
	FoodValue      int  `yaml:"food_value"`       // Base point value of normal food
	PowerUpSeconds int  `yaml:"power_up_seconds"` // Seconds between power-up food grants
	WallDeath      bool `yaml:"wall_death"`       // False = border wraps instead of killing
}

// Validate checks the configuration for values that would break a session.
// Called at load time so a bad config never reaches the rule engine.
func (c GameConfig) Validate() error {
	if c.Board.Width < 10 || c.Board.Height < 8 {
		return fmt.Errorf("config: board %dx%d is too small (minimum 10x8)", c.Board.Width, c.Board.Height)
	}
	if c.Gameplay.InitialLength < 1 {
		return fmt.Errorf("config: initial_length must be at least 1, got %d", c.Gameplay.InitialLength)
	}
	if c.Gameplay.InitialLength >= c.Board.Width/2 {
		return fmt.Errorf("config: initial_length %d does not fit the board", c.Gameplay.InitialLength)
	}
	if c.Gameplay.BonusChance < 0 || c.Gameplay.BonusChance > 1 {
		return fmt.Errorf("config: bonus_chance must be in [0, 1], got %g", c.Gameplay.BonusChance)
	}
	if c.TimeTrial.LimitSeconds <= 0 {
		return fmt.Errorf("config: time_trial limit_seconds must be positive, got %d", c.TimeTrial.LimitSeconds)
	}
	if c.Obstacle.Count < 0 {
		return fmt.Errorf("config: obstacle count cannot be negative, got %d", c.Obstacle.Count)
	}
	for _, name := range PresetNames() {
		p, ok := c.Difficulties[name]
		if !ok {
			return fmt.Errorf("config: missing difficulty %q", name)
		}
		if p.MoveEveryTicks < 1 {
			return fmt.Errorf("config: difficulty %q move_every_ticks must be at least 1", name)
		}
		if p.FoodValue <= 0 {
			return fmt.Errorf("config: difficulty %q food_value must be positive", name)
		}
		if p.PowerUpSeconds <= 0 {
			return fmt.Errorf("config: difficulty %q power_up_seconds must be positive", name)
		}
	}
	return nil
}
