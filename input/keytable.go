package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys to actions
// One key may carry several actions; the session decides which apply in its current state
type KeyTable struct {
	// Special keys (arrows, enter, escape, Ctrl+*)
	Keys map[tcell.Key][]Action

	// Printable keys, matched case-insensitively
	Runes map[rune][]Action
}

// DefaultKeyTable returns the fixed bindings
// Left ship: w a s d + space; right ship: arrows + enter
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key][]Action{
			tcell.KeyUp:     {ActionRightUp, ActionMenuUp},
			tcell.KeyDown:   {ActionRightDown, ActionMenuDown},
			tcell.KeyLeft:   {ActionRightLeft},
			tcell.KeyRight:  {ActionRightRight},
			tcell.KeyEnter:  {ActionRightFire, ActionMenuConfirm},
			tcell.KeyEscape: {ActionQuit},
			tcell.KeyCtrlC:  {ActionExit},
		},
		Runes: map[rune][]Action{
			'w': {ActionLeftUp, ActionMenuUp},
			's': {ActionLeftDown, ActionMenuDown},
			'a': {ActionLeftLeft},
			'd': {ActionLeftRight},
			' ': {ActionLeftFire, ActionMenuConfirm},
			'p': {ActionPause},
			'q': {ActionExit},
			'1': {ActionSelectAI},
			'2': {ActionSelectPVP},
		},
	}
}

// Lookup resolves a key event to its actions, nil when unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) []Action {
	return kt.LookupKey(ev.Key(), ev.Rune())
}

// LookupKey resolves a key code and rune pair
func (kt *KeyTable) LookupKey(key tcell.Key, r rune) []Action {
	if key == tcell.KeyRune {
		return kt.Runes[unicode.ToLower(r)]
	}
	return kt.Keys[key]
}
