package component

import "project-bones/internal/ecs"

const CInteractable ecs.ComponentType = 8

// InteractionKind classifies what happens when the player interacts.
type InteractionKind uint8

const (
	KindItem InteractionKind = iota
	KindPuzzle
	KindPerson
	KindDoor
)

var kindNames = [...]string{"Item", "Puzzle", "Person", "Door"}

func (k InteractionKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Payload is the closed set of interaction targets: Item, Puzzle, Person
// and Door. The kind is read off the payload, so a mismatched tag cannot
// be constructed.
type Payload interface {
	Kind() InteractionKind
	isPayload()
}

// Interactable marks an entity the player can interact with when in range.
// CanInteract is recomputed every tick by proximity.
type Interactable struct {
	CanInteract bool
	Payload     Payload
}

func (Interactable) Type() ecs.ComponentType { return CInteractable }

// NewInteractable wraps p with the proximity flag cleared. A nil payload
// becomes a default Door.
func NewInteractable(p Payload) Interactable {
	if p == nil {
		p = NewDoor()
	}
	return Interactable{Payload: p}
}

// Kind returns the interaction kind of the payload.
func (i Interactable) Kind() InteractionKind {
	if i.Payload == nil {
		return KindDoor
	}
	return i.Payload.Kind()
}

// Puzzle is a placeholder payload; puzzle logic is not modelled.
type Puzzle struct{}

func (Puzzle) Kind() InteractionKind { return KindPuzzle }
func (Puzzle) isPayload()            {}
