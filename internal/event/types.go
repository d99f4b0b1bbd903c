package event

import (
	"project-bones/internal/component"
	"project-bones/internal/ecs"
)

// InteractionWrapper is raised once per in-range interactable when the
// player presses Interact.
type InteractionWrapper struct {
	Entity ecs.EntityID
	Kind   component.InteractionKind
}

// ItemInteraction asks for Item to be picked up.
type ItemInteraction struct {
	Item   component.Item
	Source ecs.EntityID
}

// PuzzleInteraction is raised for puzzle interactables.
type PuzzleInteraction struct {
	Puzzle component.Puzzle
	Source ecs.EntityID
}

// PersonInteraction opens a conversation at (Conversation, Choice).
type PersonInteraction struct {
	Person       component.Person
	Conversation int
	Choice       int
	Source       ecs.EntityID
}

// DoorInteraction carries the door state seen at interaction time and the
// entity whose payload should change if it opens.
type DoorInteraction struct {
	Door   component.Door
	Entity ecs.EntityID
}

// RoomChange requests a switch to another room of the level set.
type RoomChange struct {
	Room int
}

// CameraSetup signals that the camera entity exists and input can start.
type CameraSetup struct{}
