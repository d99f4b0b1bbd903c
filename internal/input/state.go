package input

// ActionState tracks each action across two consecutive ticks so that edge
// queries (just pressed / just released) are answerable.
type ActionState struct {
	cur  [actionCount]bool
	prev [actionCount]bool
}

// Update rolls the current tick into history and marks held as the actions
// down this tick. Call exactly once per tick.
func (s *ActionState) Update(held ...Action) {
	s.prev = s.cur
	s.cur = [actionCount]bool{}
	for _, a := range held {
		if a < actionCount {
			s.cur[a] = true
		}
	}
}

// Pressed reports whether a is held this tick.
func (s *ActionState) Pressed(a Action) bool {
	return a < actionCount && s.cur[a]
}

// JustPressed is true only on the tick a goes from released to pressed.
func (s *ActionState) JustPressed(a Action) bool {
	return a < actionCount && s.cur[a] && !s.prev[a]
}

// JustReleased is true only on the tick a goes from pressed to released.
func (s *ActionState) JustReleased(a Action) bool {
	return a < actionCount && !s.cur[a] && s.prev[a]
}

// Pointer is the primary pointer button plus cursor position, in world
// units with Y growing upward. PressX/PressY hold where the button last
// went down.
type Pointer struct {
	X, Y           float64
	PressX, PressY float64

	down, justPressed, justReleased bool
}

// pointerSample is one tick's worth of pointer input. pressed and released
// carry edges that may have happened between ticks.
type pointerSample struct {
	x, y, pressX, pressY float64
	down                 bool
	pressed, released    bool
}

// Update records this tick's cursor position and button state, deriving
// edges from the previous tick.
func (p *Pointer) Update(x, y float64, down bool) {
	p.step(pointerSample{
		x: x, y: y, down: down,
		pressed: down && !p.down, released: !down && p.down,
		pressX: x, pressY: y,
	})
}

func (p *Pointer) step(s pointerSample) {
	p.justPressed = s.pressed || (s.down && !p.down)
	p.justReleased = s.released || (!s.down && p.down)
	if p.justPressed {
		p.PressX, p.PressY = s.pressX, s.pressY
	}
	p.X, p.Y, p.down = s.x, s.y, s.down
}

// Pressed reports whether the primary button is down.
func (p *Pointer) Pressed() bool { return p.down }

// JustPressed is true on the tick the primary button went down. A click
// shorter than a tick is both just pressed and just released.
func (p *Pointer) JustPressed() bool { return p.justPressed }

// JustReleased is true on the tick the primary button came up.
func (p *Pointer) JustReleased() bool { return p.justReleased }
