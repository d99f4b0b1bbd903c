package system

import (
	"fmt"

	"project-bones/internal/component"
	"project-bones/internal/ecs"
	"project-bones/internal/session"
)

// ResolveItems stores each picked-up item in the first free inventory slot.
// A full inventory drops the pickup without telling anyone.
func ResolveItems(s *session.Session) {
	for _, ev := range s.Bus.Items.Drain() {
		inv := s.Inventory()
		if !inv.Store(ev.Item) {
			continue
		}
		s.SetInventory(inv)
		s.Log.Debug("picked up item", "item", ev.Item.ID, "source", ev.Source, "held", inv.Count())
		s.Say(pickupMessage(ev.Item))
	}
}

func pickupMessage(it component.Item) string {
	if it.ID == "" {
		return "You picked something up."
	}
	return fmt.Sprintf("You picked up a %s.", it.ID)
}

// ResolveDoors opens doors. A door without requirements opens
// unconditionally; a locked one opens when the inventory satisfies its
// requirements, and its payload is replaced by the unlocked door.
func ResolveDoors(s *session.Session) {
	for _, ev := range s.Bus.Doors.Drain() {
		if !ev.Door.Locked() {
			s.Log.Info("opened the door", "entity", ev.Entity)
			s.Say("You opened the door!")
			if s.Rules.PersistUnconditionalOpen {
				setDoor(s.World, ev.Entity, ev.Door.Unlocked())
			}
			continue
		}

		if !requirementsMet(ev.Door.Requirements, s.Inventory(), s.Rules.DoorRequiresAll) {
			s.Log.Debug("door stays locked", "entity", ev.Entity, "requires", ev.Door.Requirements)
			s.Say("The door is locked.")
			continue
		}
		setDoor(s.World, ev.Entity, ev.Door.Unlocked())
		s.Log.Info("opened the door with key", "entity", ev.Entity, "requires", ev.Door.Requirements)
		s.Say("You opened the door with the key!")
	}
}

// requirementsMet checks the inventory against a door's list. With all set
// every entry must be held; otherwise any single held entry is enough.
func requirementsMet(reqs []string, inv component.Inventory, all bool) bool {
	for _, r := range reqs {
		held := inv.Contains(r)
		if all && !held {
			return false
		}
		if !all && held {
			return true
		}
	}
	return all
}

// setDoor replaces id's door payload. Entities that are gone or no longer
// hold a door are left alone.
func setDoor(w *ecs.World, id ecs.EntityID, d component.Door) {
	c := w.Get(id, component.CInteractable)
	if c == nil {
		return
	}
	inter := c.(component.Interactable)
	if _, ok := inter.Payload.(component.Door); !ok {
		return
	}
	inter.Payload = d
	w.Add(id, inter)
}

// ResolvePuzzles consumes puzzle events. Puzzles have no behaviour yet.
func ResolvePuzzles(s *session.Session) {
	for _, ev := range s.Bus.Puzzles.Drain() {
		s.Log.Debug("puzzle interaction", "source", ev.Source)
	}
}

// ReceiveDialogue shows the prompt at each conversation cursor, if the
// person has one.
func ReceiveDialogue(s *session.Session) {
	for _, ev := range s.Bus.People.Drain() {
		node, ok := ev.Person.Node(ev.Conversation)
		if !ok {
			s.Log.Debug("person has nothing to say", "source", ev.Source)
			continue
		}
		s.Say(node.Prompt)
	}
}
