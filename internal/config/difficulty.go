package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy    DifficultyPreset = "easy"
	DifficultyMedium  DifficultyPreset = "medium"
	DifficultyHard    DifficultyPreset = "hard"
	DifficultyExtreme DifficultyPreset = "extreme"
)

// PresetNames returns all difficulty names in ascending order.
func PresetNames() []string {
	return []string{
		string(DifficultyEasy),
		string(DifficultyMedium),
		string(DifficultyHard),
		string(DifficultyExtreme),
	}
}

// ParsePreset validates a difficulty name. Empty input maps to medium.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyMedium, nil
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExtreme:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, medium, hard or extreme)", s)
	}
}

// Params returns the rule parameters for a preset.
func (c GameConfig) Params(p DifficultyPreset) (DifficultyParams, error) {
	params, ok := c.Difficulties[string(p)]
	if !ok {
		return DifficultyParams{}, fmt.Errorf("config: no parameters for difficulty %q", p)
	}
	return params, nil
}
