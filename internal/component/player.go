package component

import "project-bones/internal/ecs"

const CPlayer ecs.ComponentType = 5

// PlayerMode selects whether input drives movement or an interaction UI.
type PlayerMode uint8

const (
	ModeMoving PlayerMode = iota
	ModeInteracting
)

func (m PlayerMode) String() string {
	if m == ModeInteracting {
		return "Interacting"
	}
	return "Moving"
}

// Player marks the single player-parent entity that owns BodyParts,
// Inventory and ArmVec.
type Player struct {
	Mode PlayerMode
}

func (Player) Type() ecs.ComponentType { return CPlayer }

const CArmVec ecs.ComponentType = 7

// ArmVec holds the pointer position captured when an arm-aim drag began.
type ArmVec struct {
	X, Y float64
}

func (ArmVec) Type() ecs.ComponentType { return CArmVec }
