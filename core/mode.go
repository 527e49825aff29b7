package core

import "strings"

// Mode selects who controls the right ship for a round
type Mode uint8

const (
	// ModeAI pits the left player against the computer
	ModeAI Mode = iota
	// ModePVP is two humans sharing one keyboard
	ModePVP
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeAI:
		return "ai"
	case ModePVP:
		return "pvp"
	default:
		return "unknown"
	}
}

// ParseMode maps a config string to a mode
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ai", "cpu", "computer":
		return ModeAI, true
	case "pvp", "versus":
		return ModePVP, true
	}
	return ModeAI, false
}
