package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/space-blaster/components"
	"github.com/lixenwraith/space-blaster/core"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbText       = tcell.NewRGBColor(230, 230, 230) // Near white
	RgbTextDim    = tcell.NewRGBColor(140, 140, 150) // Help and status text
	RgbDivider    = tcell.NewRGBColor(200, 200, 200) // Light gray

	RgbShipLeft        = tcell.NewRGBColor(255, 215, 0)   // Yellow
	RgbShipRight       = tcell.NewRGBColor(230, 40, 40)   // Red
	RgbProjectileLeft  = tcell.NewRGBColor(255, 240, 120) // Pale yellow
	RgbProjectileRight = tcell.NewRGBColor(255, 120, 120) // Pale red

	RgbPowerUpHealth    = tcell.NewRGBColor(60, 220, 90)  // Green
	RgbPowerUpMultiShot = tcell.NewRGBColor(80, 200, 255) // Cyan

	RgbHealthEmpty = tcell.NewRGBColor(60, 60, 70) // Unfilled bar segment

	RgbButtonBg         = tcell.NewRGBColor(60, 60, 80)   // Idle menu button
	RgbButtonSelectedBg = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbButtonSelectedFg = tcell.NewRGBColor(0, 0, 0)

	RgbBanner   = tcell.NewRGBColor(255, 165, 0) // Orange
	RgbPausedBg = tcell.NewRGBColor(128, 0, 128) // Dark purple
)

// Styles
var (
	StyleBackground = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	StyleTitle      = StyleBackground.Foreground(RgbText).Bold(true)
	StyleDim        = StyleBackground.Foreground(RgbTextDim)
	StyleBanner     = StyleBackground.Foreground(RgbBanner).Bold(true)
	StyleButton     = StyleBackground.Background(RgbButtonBg)
	StyleSelected   = StyleBackground.Background(RgbButtonSelectedBg).Foreground(RgbButtonSelectedFg).Bold(true)
	StylePaused     = StyleBackground.Background(RgbPausedBg).Foreground(RgbText).Bold(true)
	StyleDivider    = StyleBackground.Foreground(RgbDivider)
)

// ShipColor returns the body color for side
func ShipColor(side core.Side) tcell.Color {
	if side == core.SideLeft {
		return RgbShipLeft
	}
	return RgbShipRight
}

// ProjectileColor returns the shot color for the owning side
func ProjectileColor(side core.Side) tcell.Color {
	if side == core.SideLeft {
		return RgbProjectileLeft
	}
	return RgbProjectileRight
}

// PowerUpColor returns the color for a power-up kind
func PowerUpColor(kind components.PowerUpKind) tcell.Color {
	if kind == components.PowerUpMultiShot {
		return RgbPowerUpMultiShot
	}
	return RgbPowerUpHealth
}

// HealthColor grades from red at empty through yellow to green at full
// progress is 0.0 to 1.0
func HealthColor(progress float64) tcell.Color {
	if progress <= 0 {
		return RgbHealthEmpty
	}
	if progress > 1 {
		progress = 1
	}

	if progress < 0.5 { // Red to Yellow
		t := progress / 0.5
		return tcell.NewRGBColor(220, int32(40+(215-40)*t), 40)
	}
	// Yellow to Green
	t := (progress - 0.5) / 0.5
	return tcell.NewRGBColor(int32(220-(220-60)*t), int32(215+(220-215)*t), int32(40+(90-40)*t))
}
