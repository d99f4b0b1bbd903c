package input

import (
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Key identifies a physical terminal key. Rune is set only when Code is
// tcell.KeyRune.
type Key struct {
	Code tcell.Key
	Rune rune
}

// KeyOf extracts the Key of a tcell key event. Letters are folded to lower
// case so bindings ignore shift.
func KeyOf(ev *tcell.EventKey) Key {
	if ev.Key() == tcell.KeyRune {
		return Key{Code: tcell.KeyRune, Rune: toLower(ev.Rune())}
	}
	return Key{Code: ev.Key()}
}

var namedKeys = map[string]tcell.Key{
	"left":      tcell.KeyLeft,
	"up":        tcell.KeyUp,
	"right":     tcell.KeyRight,
	"down":      tcell.KeyDown,
	"return":    tcell.KeyEnter,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
	"escape":    tcell.KeyEscape,
	"insert":    tcell.KeyInsert,
	"delete":    tcell.KeyDelete,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pageup":    tcell.KeyPgUp,
	"pagedown":  tcell.KeyPgDn,
	"pause":     tcell.KeyPause,
	"f1":        tcell.KeyF1,
	"f2":        tcell.KeyF2,
	"f3":        tcell.KeyF3,
	"f4":        tcell.KeyF4,
	"f5":        tcell.KeyF5,
	"f6":        tcell.KeyF6,
	"f7":        tcell.KeyF7,
	"f8":        tcell.KeyF8,
	"f9":        tcell.KeyF9,
	"f10":       tcell.KeyF10,
	"f11":       tcell.KeyF11,
	"f12":       tcell.KeyF12,
}

var namedRunes = map[string]rune{
	"spacebar":     ' ',
	"space":        ' ',
	"comma":        ',',
	"period":       '.',
	"slash":        '/',
	"backslash":    '\\',
	"semicolon":    ';',
	"apostrophe":   '\'',
	"minus":        '-',
	"equals":       '=',
	"plus":         '+',
	"grave":        '`',
	"leftbracket":  '[',
	"rightbracket": ']',
}

// ParseKey resolves a settings-file key name. Single characters bind to
// that rune; unknown names fall back to the space bar.
func ParseKey(name string) Key {
	n := strings.ToLower(strings.TrimSpace(name))
	if code, ok := namedKeys[n]; ok {
		return Key{Code: code}
	}
	if r, ok := namedRunes[n]; ok {
		return Key{Code: tcell.KeyRune, Rune: r}
	}
	if utf8.RuneCountInString(n) == 1 {
		r, _ := utf8.DecodeRuneInString(n)
		return Key{Code: tcell.KeyRune, Rune: r}
	}
	return Key{Code: tcell.KeyRune, Rune: ' '}
}

// KeyMap binds physical keys to actions. Several keys may share an action.
type KeyMap map[Key]Action

// Binding pairs an action name with a key name, as written in settings.
type Binding struct {
	Action string
	Key    string
}

// NewKeyMap builds a KeyMap from settings bindings. Later bindings for the
// same key win.
func NewKeyMap(bindings []Binding) KeyMap {
	km := make(KeyMap, len(bindings))
	for _, b := range bindings {
		km[ParseKey(b.Key)] = ParseAction(b.Action)
	}
	return km
}

// Lookup returns the action bound to k.
func (km KeyMap) Lookup(k Key) (Action, bool) {
	a, ok := km[k]
	return a, ok
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
