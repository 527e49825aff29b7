package constants

import "time"

// Game Loop Timing Constants
const (
	// DefaultTickRate is the fixed simulation rate in ticks per second
	DefaultTickRate = 60

	// MinTickRate and MaxTickRate bound the configurable tick rate
	MinTickRate = 10
	MaxTickRate = 240

	// FrameUpdateInterval is the default tick interval (~60 FPS)
	FrameUpdateInterval = time.Second / DefaultTickRate

	// KeyHoldWindow is how long a key counts as held after its last press or repeat
	// Terminals report presses only; auto-repeat keeps the key alive while held
	KeyHoldWindow = 120 * time.Millisecond
)
