package component

import "project-bones/internal/ecs"

const CInventory ecs.ComponentType = 6

// InventorySize is the fixed number of item slots the player carries.
const InventorySize = 8

// Slot is one inventory cell. An empty-ID item is still a real item, so
// occupancy is tracked separately from the item value.
type Slot struct {
	Item     Item
	Occupied bool
}

// Inventory is a fixed array of optional item slots.
type Inventory struct {
	Slots [InventorySize]Slot
}

func (Inventory) Type() ecs.ComponentType { return CInventory }

// Store copies it into the first empty slot. It returns false, leaving the
// inventory untouched, when every slot is occupied.
func (inv *Inventory) Store(it Item) bool {
	for i := range inv.Slots {
		if !inv.Slots[i].Occupied {
			inv.Slots[i] = Slot{Item: it, Occupied: true}
			return true
		}
	}
	return false
}

// Contains reports whether any occupied slot holds an item with the given ID.
func (inv Inventory) Contains(id string) bool {
	for _, s := range inv.Slots {
		if s.Occupied && s.Item.ID == id {
			return true
		}
	}
	return false
}

// Count returns the number of occupied slots.
func (inv Inventory) Count() int {
	n := 0
	for _, s := range inv.Slots {
		if s.Occupied {
			n++
		}
	}
	return n
}

// Full reports whether no slot is free.
func (inv Inventory) Full() bool { return inv.Count() == InventorySize }
