package constants

import (
	"strings"
	"time"
)

// DifficultyPreset fixes AI speed and fire rate for a whole session
type DifficultyPreset struct {
	Name       string
	AIVelocity float64
	AICooldown time.Duration
}

var (
	DifficultyEasy = DifficultyPreset{Name: "easy", AIVelocity: 3, AICooldown: 1000 * time.Millisecond}
	DifficultyHard = DifficultyPreset{Name: "hard", AIVelocity: 4.5, AICooldown: 600 * time.Millisecond}
)

// DefaultDifficulty is used when no preset is configured
var DefaultDifficulty = DifficultyEasy

// LookupDifficulty resolves a preset by case-insensitive name
func LookupDifficulty(name string) (DifficultyPreset, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case DifficultyEasy.Name:
		return DifficultyEasy, true
	case DifficultyHard.Name:
		return DifficultyHard, true
	default:
		return DifficultyPreset{}, false
	}
}
