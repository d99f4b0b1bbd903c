package component

// Door blocks passage until opened. A nil or empty Requirements list means
// the door needs nothing.
type Door struct {
	Requirements []string
	Reusable     bool
	Closed       bool
}

func (Door) Kind() InteractionKind { return KindDoor }
func (Door) isPayload()            {}

// NewDoor returns the default door: unconditional, reusable, closed.
func NewDoor() Door {
	return Door{Reusable: true, Closed: true}
}

// Locked reports whether the door still lists requirements.
func (d Door) Locked() bool { return len(d.Requirements) > 0 }

// Unlocked returns the opened form of d: no requirements, not closed,
// same reusable flag.
func (d Door) Unlocked() Door {
	return Door{Reusable: d.Reusable, Closed: false}
}
