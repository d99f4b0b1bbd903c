// Package session holds the per-game context every system runs against:
// the world, the event bus, input state and handles to the singleton
// entities.
package session

import (
	"fmt"
	"log/slog"

	"project-bones/internal/component"
	"project-bones/internal/config"
	"project-bones/internal/ecs"
	"project-bones/internal/event"
	"project-bones/internal/input"
)

// maxMessages bounds the HUD message log.
const maxMessages = 50

// Session is passed by pointer into every system call. Player and Camera
// are set once during setup and never change for the life of the session.
type Session struct {
	World   *ecs.World
	Bus     *event.Bus
	Actions *input.ActionState
	Pointer *input.Pointer
	Tuning  config.Tuning
	Rules   config.Rules
	Log     *slog.Logger

	Player ecs.EntityID
	Camera ecs.EntityID

	Messages []string
}

// New creates a session over an empty world.
func New(cfg config.Settings, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	return &Session{
		World:   ecs.NewWorld(),
		Bus:     event.NewBus(),
		Actions: &input.ActionState{},
		Pointer: &input.Pointer{},
		Tuning:  cfg.Tuning,
		Rules:   cfg.Rules,
		Log:     log,
	}
}

// Say appends a player-facing message to the HUD log.
func (s *Session) Say(msg string) {
	s.Messages = append(s.Messages, msg)
	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
}

// Validate enforces the singleton invariants: exactly one Player entity and
// one Camera entity, both matching the session handles. A violation is a
// programming error and panics.
func (s *Session) Validate() {
	mustSingle(s.World, component.CPlayer, s.Player, "player")
	mustSingle(s.World, component.CCamera, s.Camera, "camera")
}

func mustSingle(w *ecs.World, t ecs.ComponentType, want ecs.EntityID, name string) {
	ids := w.Query(t)
	if len(ids) != 1 {
		panic(fmt.Sprintf("session: expected exactly one %s entity, found %d", name, len(ids)))
	}
	if ids[0] != want {
		panic(fmt.Sprintf("session: %s handle %d does not match entity %d", name, want, ids[0]))
	}
}

// BodyParts returns the player's body-part cycle.
func (s *Session) BodyParts() component.BodyParts {
	return mustGet[component.BodyParts](s.World, s.Player, component.CBodyParts, "player body parts")
}

// SetBodyParts writes the cycle back onto the player.
func (s *Session) SetBodyParts(b component.BodyParts) { s.World.Add(s.Player, b) }

// PlayerState returns the player's mode component.
func (s *Session) PlayerState() component.Player {
	return mustGet[component.Player](s.World, s.Player, component.CPlayer, "player")
}

// Inventory returns the player's inventory.
func (s *Session) Inventory() component.Inventory {
	return mustGet[component.Inventory](s.World, s.Player, component.CInventory, "player inventory")
}

// SetInventory writes the inventory back onto the player.
func (s *Session) SetInventory(inv component.Inventory) { s.World.Add(s.Player, inv) }

// ArmVec returns the stored aim origin.
func (s *Session) ArmVec() component.ArmVec {
	return mustGet[component.ArmVec](s.World, s.Player, component.CArmVec, "player arm vector")
}

// SetArmVec stores a new aim origin.
func (s *Session) SetArmVec(v component.ArmVec) { s.World.Add(s.Player, v) }

// CameraTransform returns the camera entity's transform.
func (s *Session) CameraTransform() component.Transform {
	return mustGet[component.Transform](s.World, s.Camera, component.CTransform, "camera transform")
}

// MoveCamera centres the camera on (x, y), keeping its depth.
func (s *Session) MoveCamera(x, y float64) {
	t := s.CameraTransform()
	t.X, t.Y = x, y
	s.World.Add(s.Camera, t)
}

// Transform returns id's transform if it has one.
func (s *Session) Transform(id ecs.EntityID) (component.Transform, bool) {
	c := s.World.Get(id, component.CTransform)
	if c == nil {
		return component.Transform{}, false
	}
	return c.(component.Transform), true
}

// ActiveTransform returns the transform of the active body part's entity.
// The active part always has a transform; a missing one panics.
func (s *Session) ActiveTransform() (ecs.EntityID, component.Transform) {
	ref := s.BodyParts().Current()
	return ref.Entity, mustGet[component.Transform](s.World, ref.Entity, component.CTransform, "active body part transform")
}

func mustGet[T ecs.Component](w *ecs.World, id ecs.EntityID, t ecs.ComponentType, what string) T {
	c := w.Get(id, t)
	if c == nil {
		panic(fmt.Sprintf("session: missing %s on entity %d", what, id))
	}
	return c.(T)
}
