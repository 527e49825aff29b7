package render

import "github.com/gdamore/tcell/v2"

// Surface is the drawable part of tcell.Screen
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

// shower is optionally implemented by surfaces that buffer output
type shower interface {
	Show()
}
