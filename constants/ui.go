package constants

import "time"

// UI Text
const (
	TitleText         = "Spaceship Fighter"
	MenuButtonAI      = "Play vs. AI"
	MenuButtonPVP     = "Play vs. Player"
	MenuHelpText      = "P = Pause | ESC = Return to Menu | Q = Quit"
	PausedText        = "PAUSED"
	ControlsLeftText  = "Yellow: WASD + Space"
	ControlsRightText = "Red: Arrows + Enter"
)

// Outcome labels
const (
	LabelLeftWins     = "Yellow Wins!"
	LabelRightWins    = "Red Wins!"
	LabelComputerWins = "Computer Wins!"
)

// UI Timing
const (
	// OutcomeBannerDuration is how long the last outcome stays on the menu screen
	OutcomeBannerDuration = 5 * time.Second
)

// UI Layout (terminal cells)
const (
	// HealthBarCells is the width of each health bar
	HealthBarCells = 20

	// HUDRows is the number of rows reserved above the arena
	HUDRows = 2
)
