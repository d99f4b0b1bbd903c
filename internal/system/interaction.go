package system

import (
	"project-bones/internal/component"
	"project-bones/internal/ecs"
	"project-bones/internal/event"
	"project-bones/internal/input"
	"project-bones/internal/session"
)

// DetectInteractables recomputes every interactable's CanInteract flag from
// its distance to the active body part. The flag is rewritten every tick;
// there is no hysteresis at the boundary.
func DetectInteractables(s *session.Session) {
	_, active := s.ActiveTransform()
	limit := s.Tuning.InteractionRange
	for _, id := range s.World.Query(component.CInteractable, component.CTransform) {
		inter := s.World.Get(id, component.CInteractable).(component.Interactable)
		t := s.World.Get(id, component.CTransform).(component.Transform)
		inter.CanInteract = active.Distance(t) <= limit
		s.World.Add(id, inter)
	}
}

// Interact raises one InteractionWrapper for every in-range interactable
// when Interact is first pressed. Several in range means several events,
// in entity creation order.
func Interact(s *session.Session) {
	if !s.Actions.JustPressed(input.Interact) {
		return
	}
	for _, id := range s.World.Query(component.CInteractable) {
		inter := s.World.Get(id, component.CInteractable).(component.Interactable)
		if inter.CanInteract {
			s.Bus.Interactions.Push(event.InteractionWrapper{Entity: id, Kind: inter.Kind()})
		}
	}
}

// BroadcastInteractions fans each InteractionWrapper out into exactly one
// kind-specific event.
func BroadcastInteractions(s *session.Session) {
	for _, ev := range s.Bus.Interactions.Drain() {
		switch ev.Kind {
		case component.KindItem:
			s.Log.Info("interacted with an item", "entity", ev.Entity)
			item := component.Item{}
			if s.Rules.ForwardItemPayload {
				if stored, ok := payloadOf[component.Item](s.World, ev.Entity); ok {
					item = stored
				}
			}
			s.Bus.Items.Push(event.ItemInteraction{Item: item, Source: ev.Entity})
		case component.KindPuzzle:
			s.Log.Info("interacted with a puzzle", "entity", ev.Entity)
			s.Bus.Puzzles.Push(event.PuzzleInteraction{Source: ev.Entity})
		case component.KindPerson:
			s.Log.Info("interacted with a person", "entity", ev.Entity)
			person := component.Person{}
			if s.Rules.ForwardPersonPayload {
				if stored, ok := payloadOf[component.Person](s.World, ev.Entity); ok {
					person = stored
				}
			}
			s.Bus.People.Push(event.PersonInteraction{Person: person, Source: ev.Entity})
		case component.KindDoor:
			s.Log.Info("interacted with a door", "entity", ev.Entity)
			door, ok := payloadOf[component.Door](s.World, ev.Entity)
			if !ok {
				door = component.NewDoor()
			}
			s.Bus.Doors.Push(event.DoorInteraction{Door: door, Entity: ev.Entity})
		}
	}
}

// payloadOf returns id's interactable payload if it is a T.
func payloadOf[T component.Payload](w *ecs.World, id ecs.EntityID) (T, bool) {
	var zero T
	c := w.Get(id, component.CInteractable)
	if c == nil {
		return zero, false
	}
	p, ok := c.(component.Interactable).Payload.(T)
	return p, ok
}
