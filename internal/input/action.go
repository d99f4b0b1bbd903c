package input

// Action is a logical input, decoupled from the physical key that produces it.
type Action uint8

const (
	Up Action = iota
	Down
	Left
	Right
	Interact
	CycleForward
	CycleBackward
	Unused
	Split

	actionCount
)

var actionNames = [actionCount]string{
	Up:            "Up",
	Down:          "Down",
	Left:          "Left",
	Right:         "Right",
	Interact:      "Interact",
	CycleForward:  "CycleForward",
	CycleBackward: "CycleBackward",
	Unused:        "Unused",
	Split:         "Split",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "Unknown"
}

// Actions lists every action in declaration order.
func Actions() []Action {
	all := make([]Action, actionCount)
	for i := range all {
		all[i] = Action(i)
	}
	return all
}

// ParseAction maps a settings-file action name to an Action. Names are
// case-sensitive; anything unrecognised becomes Unused.
func ParseAction(name string) Action {
	for i, n := range actionNames {
		if n == name {
			return Action(i)
		}
	}
	return Unused
}
