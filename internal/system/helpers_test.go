package system

import (
	"io"
	"log/slog"

	"project-bones/internal/component"
	"project-bones/internal/config"
	"project-bones/internal/ecs"
	"project-bones/internal/factory"
	"project-bones/internal/input"
	"project-bones/internal/level"
	"project-bones/internal/session"
)

// newTestSession returns a session with the body at the origin, the player
// parent and a camera, using default tuning.
func newTestSession() (*session.Session, ecs.EntityID) {
	s := session.New(config.Default(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	body := factory.NewBodyPart(s.World, component.PartBody, 0, 0)
	s.Player = factory.NewPlayerParent(s.World, body)
	s.Camera = factory.NewCamera(s.World, component.Transform{}, 1)
	return s, body
}

// press runs one input tick with the given actions held.
func press(s *session.Session, held ...input.Action) {
	s.Actions.Update(held...)
}

func transformOf(s *session.Session, id ecs.EntityID) component.Transform {
	return s.World.Get(id, component.CTransform).(component.Transform)
}

func interactableOf(s *session.Session, id ecs.EntityID) component.Interactable {
	return s.World.Get(id, component.CInteractable).(component.Interactable)
}

func spawnAt(s *session.Session, identifier string, x, y float64, requires ...string) ecs.EntityID {
	return factory.NewInteractable(s.World, level.SpawnRecord{Identifier: identifier, X: x, Y: y, Requires: requires})
}

// detach splits off a left arm and returns it.
func detach(s *session.Session) ecs.EntityID {
	press(s, input.Split)
	DetachPart(s)
	press(s)
	return s.BodyParts().Current().Entity
}
