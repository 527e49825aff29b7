package render

import "github.com/gdamore/tcell/v2"

// Cell is one terminal grid position
type Cell struct {
	Rune  rune
	Style tcell.Style
}
