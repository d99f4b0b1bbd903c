package event

// Bus holds one queue per event type. Producers push during a tick and
// consumers later in the same tick drain; EndTick discards anything left so
// no event outlives its frame.
type Bus struct {
	Interactions InteractionQueue
	Items        Queue[ItemInteraction]
	Puzzles      Queue[PuzzleInteraction]
	People       Queue[PersonInteraction]
	Doors        Queue[DoorInteraction]
	RoomChanges  Queue[RoomChange]
	CameraSetups Queue[CameraSetup]
}

// InteractionQueue is the first pipeline stage's queue.
type InteractionQueue = Queue[InteractionWrapper]

// NewBus returns an empty bus.
func NewBus() *Bus { return &Bus{} }

// Pending returns the total number of undelivered events.
func (b *Bus) Pending() int {
	return b.Interactions.Len() + b.Items.Len() + b.Puzzles.Len() +
		b.People.Len() + b.Doors.Len() + b.RoomChanges.Len() + b.CameraSetups.Len()
}

// EndTick drops undelivered events.
func (b *Bus) EndTick() {
	b.Interactions.Clear()
	b.Items.Clear()
	b.Puzzles.Clear()
	b.People.Clear()
	b.Doors.Clear()
	b.RoomChanges.Clear()
	b.CameraSetups.Clear()
}
