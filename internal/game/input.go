package game

import "github.com/gdamore/tcell/v2"

// Control is a frontend command handled outside the action bindings.
type Control uint8

const (
	ControlNone Control = iota
	ControlPause
	ControlQuit
)

// keyToControl maps a tcell key event to a frontend control. Everything
// else goes to the input tracker.
func keyToControl(ev *tcell.EventKey) Control {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ControlQuit
	}
	if ev.Key() != tcell.KeyRune {
		return ControlNone
	}
	switch ev.Rune() {
	case 'p', 'P':
		return ControlPause
	case 'q', 'Q':
		return ControlQuit
	}
	return ControlNone
}
