package system

import "project-bones/internal/session"

// System is one step of the per-tick pipeline.
type System func(*session.Session)

// Running is the gameplay pipeline, in execution order. Movement precedes
// camera follow, and detection precedes the interact trigger, so each
// reader sees this tick's writes.
var Running = []System{
	ActionDebug,
	PlayerMovement,
	CameraFollow,
	CycleParts,
	DetachPart,
	DetectInteractables,
	Interact,
	BroadcastInteractions,
	ResolveItems,
	ResolvePuzzles,
	ReceiveDialogue,
	ResolveDoors,
}

// Tick checks the session invariants and runs systems in order.
func Tick(s *session.Session, systems []System) {
	s.Validate()
	for _, sys := range systems {
		sys(s)
	}
}
