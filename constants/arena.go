// @focus: #constants { arena }
package constants

// Arena Geometry (world units, origin top-left)
const (
	// ArenaWidth and ArenaHeight are the play field dimensions
	ArenaWidth  = 900
	ArenaHeight = 500

	// DividerWidth is the width of the center wall splitting the field
	DividerWidth = 10

	// ArenaBottomMargin is reserved below the ships for UI
	ArenaBottomMargin = 15

	// SpawnInset keeps power-ups away from walls and the divider
	SpawnInset = 50
)

// Start slots (top-left corner of each ship)
const (
	LeftStartX  = 100
	RightStartX = 700
	StartY      = 300
)
