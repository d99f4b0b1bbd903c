package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// Terminals report no key-up. A held key sends one event, pauses for the
// terminal's auto-repeat delay, then repeats quickly. A key therefore stays
// held for DefaultRepeatDelay after its first event and for
// DefaultHoldWindow after each repeat.
const (
	DefaultHoldWindow  = 120 * time.Millisecond
	DefaultRepeatDelay = 600 * time.Millisecond
)

// Timing sets how long a key counts as held after its last event.
type Timing struct {
	Hold        time.Duration // after an auto-repeat
	RepeatDelay time.Duration // after the first event of a press
}

// DefaultTiming matches common terminal repeat settings.
var DefaultTiming = Timing{Hold: DefaultHoldWindow, RepeatDelay: DefaultRepeatDelay}

// PointerMapper converts a terminal cell to world coordinates.
type PointerMapper func(col, row int) (x, y float64)

// cellMapper is the fallback mapping: one world unit per cell, Y up.
func cellMapper(col, row int) (float64, float64) { return float64(col), -float64(row) }

// keyHold is one action's current press: when it began and when the
// latest event for it arrived.
type keyHold struct {
	start, last time.Time
}

// Tracker turns the terminal event stream into held-action and pointer
// snapshots. HandleEvent and Apply may run on different goroutines.
type Tracker struct {
	mu     sync.Mutex
	keys   KeyMap
	timing Timing
	holds  [actionCount]keyHold
	mapper PointerMapper

	mouseX, mouseY float64
	mouseDown      bool
	// Edges seen since the last Apply, so a click shorter than a tick
	// still registers.
	pressed, released bool
	pressX, pressY    float64
}

// NewTracker returns a Tracker bound to keys. Zero timing fields take the
// defaults.
func NewTracker(keys KeyMap, timing Timing) *Tracker {
	if timing.Hold <= 0 {
		timing.Hold = DefaultHoldWindow
	}
	if timing.RepeatDelay <= 0 {
		timing.RepeatDelay = DefaultRepeatDelay
	}
	return &Tracker{keys: keys, timing: timing, mapper: cellMapper}
}

// SetKeyMap swaps the active bindings.
func (t *Tracker) SetKeyMap(keys KeyMap) {
	t.mu.Lock()
	t.keys = keys
	t.mu.Unlock()
}

// SetPointerMapper sets the cell to world conversion used for mouse events.
// A nil mapper restores one unit per cell.
func (t *Tracker) SetPointerMapper(m PointerMapper) {
	if m == nil {
		m = cellMapper
	}
	t.mu.Lock()
	t.mapper = m
	t.mu.Unlock()
}

// HandleEvent records ev. It reports whether the event was a bound key or
// a mouse event.
func (t *Tracker) HandleEvent(ev tcell.Event) bool {
	return t.handleAt(ev, ev.When())
}

func (t *Tracker) handleAt(ev tcell.Event, at time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		a, ok := t.keys.Lookup(KeyOf(ev))
		if !ok {
			return false
		}
		h := &t.holds[a]
		if !t.heldAt(*h, at) {
			h.start = at
		}
		h.last = at
		return true
	case *tcell.EventMouse:
		t.mouseX, t.mouseY = t.mapper(ev.Position())
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !t.mouseDown {
			t.pressed = true
			t.pressX, t.pressY = t.mouseX, t.mouseY
		}
		if !down && t.mouseDown {
			t.released = true
		}
		t.mouseDown = down
		return true
	}
	return false
}

// heldAt reports whether h is still down at now. Until the first repeat
// arrives the longer repeat delay applies.
func (t *Tracker) heldAt(h keyHold, now time.Time) bool {
	if h.last.IsZero() {
		return false
	}
	window := t.timing.Hold
	if h.last.Equal(h.start) {
		window = t.timing.RepeatDelay
	}
	return now.Sub(h.last) <= window
}

// Held lists the actions still down at now.
func (t *Tracker) Held(now time.Time) []Action {
	t.mu.Lock()
	defer t.mu.Unlock()

	var held []Action
	for i, h := range t.holds {
		if t.heldAt(h, now) {
			held = append(held, Action(i))
		}
	}
	return held
}

// Apply advances state and pointer by one tick and clears the latched
// pointer edges.
func (t *Tracker) Apply(now time.Time, state *ActionState, p *Pointer) {
	state.Update(t.Held(now)...)

	t.mu.Lock()
	defer t.mu.Unlock()
	p.step(pointerSample{
		x: t.mouseX, y: t.mouseY, down: t.mouseDown,
		pressed: t.pressed, released: t.released,
		pressX: t.pressX, pressY: t.pressY,
	})
	t.pressed, t.released = false, false
}
