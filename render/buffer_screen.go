package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// BufferScreen is an in-memory Surface backed by a RenderBuffer
// Used headless and in tests in place of a tcell.Screen
type BufferScreen struct {
	buf   *RenderBuffer
	shown int
}

// NewBufferScreen wraps a RenderBuffer for screen-like access
func NewBufferScreen(buf *RenderBuffer) *BufferScreen {
	return &BufferScreen{buf: buf}
}

// SetContent writes to the buffer. Combining runes are ignored.
func (bs *BufferScreen) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	bs.buf.Set(x, y, primary, style)
}

// GetContent reads from the buffer. Width is always 1, combining always nil.
func (bs *BufferScreen) GetContent(x, y int) (primary rune, combining []rune, style tcell.Style, width int) {
	cell := bs.buf.Get(x, y)
	return cell.Rune, nil, cell.Style, 1
}

// Size returns buffer dimensions.
func (bs *BufferScreen) Size() (int, int) {
	return bs.buf.Bounds()
}

// Show counts presented frames
func (bs *BufferScreen) Show() {
	bs.shown++
}

// Frames returns how many times Show was called
func (bs *BufferScreen) Frames() int {
	return bs.shown
}

// Row returns the runes of row y as a string
func (bs *BufferScreen) Row(y int) string {
	w, _ := bs.buf.Bounds()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		sb.WriteRune(bs.buf.Get(x, y).Rune)
	}
	return sb.String()
}

// Contents returns all rows joined by newlines
func (bs *BufferScreen) Contents() string {
	_, h := bs.buf.Bounds()
	rows := make([]string, h)
	for y := range rows {
		rows[y] = bs.Row(y)
	}
	return strings.Join(rows, "\n")
}
