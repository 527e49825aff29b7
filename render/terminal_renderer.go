package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/space-blaster/components"
	"github.com/lixenwraith/space-blaster/constants"
	"github.com/lixenwraith/space-blaster/core"
	"github.com/lixenwraith/space-blaster/engine"
	"github.com/lixenwraith/space-blaster/session"
	"github.com/lixenwraith/space-blaster/status"
)

// Minimum usable terminal size
const (
	minCols = 72
	minRows = constants.HUDRows + 8
)

// Glyphs
const (
	glyphShip       = '█'
	glyphProjectile = '─'
	glyphDivider    = '│'
	glyphHealthBar  = '■'
	glyphPowerUpHP  = '+'
	glyphPowerUpMS  = '*'
)

// TerminalRenderer composes session frames into a cell buffer and flushes them to a surface
type TerminalRenderer struct {
	surface    Surface
	buf        *RenderBuffer
	reg        *status.Registry
	showStatus bool
}

// NewTerminalRenderer creates a renderer; reg is only read when showStatus is set
func NewTerminalRenderer(surface Surface, reg *status.Registry, showStatus bool) *TerminalRenderer {
	w, h := surface.Size()
	return &TerminalRenderer{
		surface:    surface,
		buf:        NewRenderBuffer(w, h),
		reg:        reg,
		showStatus: showStatus && reg != nil,
	}
}

// RenderFrame renders the entire screen for f
func (r *TerminalRenderer) RenderFrame(f session.Frame) {
	w, h := r.surface.Size()
	if bw, bh := r.buf.Bounds(); bw != w || bh != h {
		r.buf.Resize(w, h)
	} else {
		r.buf.Clear()
	}

	switch {
	case w < minCols || h < minRows:
		r.buf.CenteredText(h/2, "Terminal too small", StyleBanner)
	case f.State == session.StateMenu || !f.HasRound:
		r.drawMenu(f)
	default:
		r.drawRound(f)
		if f.State == session.StatePaused {
			r.drawPausedOverlay()
		}
	}

	if r.showStatus && h > 0 {
		r.drawStatusLine(h - 1)
	}

	r.buf.FlushTo(r.surface)
	if s, ok := r.surface.(shower); ok {
		s.Show()
	}
}

func (r *TerminalRenderer) drawMenu(f session.Frame) {
	_, h := r.buf.Bounds()
	y := max(h/4, 1)

	r.buf.CenteredText(y, constants.TitleText, StyleTitle)
	y += 2

	for i, mode := range session.MenuModes {
		label := buttonLabel(mode)
		style := StyleButton
		if i == f.MenuIndex {
			label = "> " + label + " <"
			style = StyleSelected
		}
		r.buf.CenteredText(y, padCenter(label, 24), style)
		y += 2
	}

	y++
	r.buf.CenteredText(y, constants.ControlsLeftText, StyleDim)
	r.buf.CenteredText(y+1, constants.ControlsRightText, StyleDim)
	r.buf.CenteredText(y+2, constants.MenuHelpText, StyleDim)
	r.buf.CenteredText(y+3, "Difficulty: "+f.Difficulty, StyleDim)

	if f.Banner != "" {
		r.buf.CenteredText(y+5, f.Banner, StyleBanner)
	}
}

func (r *TerminalRenderer) drawRound(f session.Frame) {
	v := f.View
	g := newGrid(r.buf, v.Arena, r.showStatus)

	r.drawHUD(f)

	x0, y0, x1, y1 := g.cells(v.Arena.Divider)
	r.buf.Fill(x0, y0, x1-x0+1, y1-y0+1, glyphDivider, StyleDivider)

	for _, pu := range v.PowerUps {
		glyph := glyphPowerUpHP
		if pu.Kind == components.PowerUpMultiShot {
			glyph = glyphPowerUpMS
		}
		x0, y0, x1, y1 := g.cells(pu.Rect)
		r.buf.Fill(x0, y0, x1-x0+1, y1-y0+1, glyph, StyleBackground.Foreground(PowerUpColor(pu.Kind)).Bold(true))
	}

	for _, p := range v.Projectiles {
		x0, y0, x1, _ := g.cells(p.Rect)
		r.buf.Fill(x0, y0, x1-x0+1, 1, glyphProjectile, StyleBackground.Foreground(ProjectileColor(p.Owner)))
	}

	for _, ship := range v.Ships {
		x0, y0, x1, y1 := g.cells(ship.Rect)
		r.buf.Fill(x0, y0, x1-x0+1, y1-y0+1, glyphShip, StyleBackground.Foreground(ShipColor(ship.Side)))
	}
}

// drawHUD writes health bars, ammo and buff timers above the arena
func (r *TerminalRenderer) drawHUD(f session.Frame) {
	w, _ := r.buf.Bounds()
	v := f.View

	left := v.Ships[core.SideLeft]
	right := v.Ships[core.SideRight]

	x := r.buf.Text(1, 0, "Yellow ", StyleTitle.Foreground(RgbShipLeft))
	x = r.drawHealthBar(x, 0, left.Health)
	r.buf.Text(x+1, 0, fmt.Sprintf("%2d", left.Health), StyleBackground)
	r.buf.Text(1, 1, sideDetail(left), StyleDim)

	rightName := "Red "
	if v.Mode == core.ModeAI {
		rightName = "Computer "
	}
	rightWidth := runewidth.StringWidth(rightName) + constants.HealthBarCells + 3
	x = r.buf.Text(w-1-rightWidth, 0, rightName, StyleTitle.Foreground(RgbShipRight))
	x = r.drawHealthBar(x, 0, right.Health)
	r.buf.Text(x+1, 0, fmt.Sprintf("%2d", right.Health), StyleBackground)
	detail := sideDetail(right)
	r.buf.Text(w-1-runewidth.StringWidth(detail), 1, detail, StyleDim)

	r.buf.CenteredText(0, modeLabel(v.Mode), StyleDim)
}

func (r *TerminalRenderer) drawHealthBar(x, y, health int) int {
	filled := health * constants.HealthBarCells / constants.MaxHealth
	color := HealthColor(float64(health) / constants.MaxHealth)
	for i := 0; i < constants.HealthBarCells; i++ {
		style := StyleBackground.Foreground(RgbHealthEmpty)
		if i < filled {
			style = StyleBackground.Foreground(color)
		}
		r.buf.Set(x+i, y, glyphHealthBar, style)
	}
	return x + constants.HealthBarCells
}

func (r *TerminalRenderer) drawPausedOverlay() {
	w, h := r.buf.Bounds()
	boxW := 28
	x := (w - boxW) / 2
	y := h/2 - 1

	r.buf.Fill(x, y, boxW, 3, ' ', StylePaused)
	r.buf.CenteredText(y, constants.PausedText, StylePaused)
	r.buf.CenteredText(y+2, "P resume | ESC menu", StylePaused.Bold(false))
}

func (r *TerminalRenderer) drawStatusLine(y int) {
	w, _ := r.buf.Bounds()
	line := runewidth.Truncate(r.reg.Summary(), w, "…")
	r.buf.Fill(0, y, w, 1, ' ', StyleDim)
	r.buf.Text(0, y, line, StyleDim)
}

// grid maps world coordinates onto the terminal cells below the HUD
type grid struct {
	top    int
	sx, sy float64
	cols   int
	rows   int
}

func newGrid(buf *RenderBuffer, arena core.Arena, statusLine bool) grid {
	w, h := buf.Bounds()
	rows := h - constants.HUDRows
	if statusLine {
		rows--
	}
	rows = max(rows, 1)
	return grid{
		top:  constants.HUDRows,
		sx:   float64(w) / arena.Width,
		sy:   float64(rows) / arena.Height,
		cols: w,
		rows: rows,
	}
}

// cells returns the inclusive cell span covered by rect; never empty
func (g grid) cells(rect core.Rect) (x0, y0, x1, y1 int) {
	x0 = clampInt(int(rect.X*g.sx), 0, g.cols-1)
	x1 = clampInt(int(math.Ceil(rect.Right()*g.sx))-1, x0, g.cols-1)
	y0 = clampInt(int(rect.Y*g.sy), 0, g.rows-1)
	y1 = clampInt(int(math.Ceil(rect.Bottom()*g.sy))-1, y0, g.rows-1)
	return x0, y0 + g.top, x1, y1 + g.top
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}

func buttonLabel(mode core.Mode) string {
	if mode == core.ModePVP {
		return constants.MenuButtonPVP
	}
	return constants.MenuButtonAI
}

func modeLabel(mode core.Mode) string {
	if mode == core.ModePVP {
		return "PVP"
	}
	return "vs AI"
}

func sideDetail(s engine.ShipView) string {
	d := fmt.Sprintf("Ammo %d/%d", s.Ammo, constants.MaxProjectiles)
	if s.MultiShotSeconds > 0 {
		d += fmt.Sprintf("  Multi %ds", s.MultiShotSeconds)
	}
	return d
}

func padCenter(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	left := (width - sw) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-sw-left)
}
