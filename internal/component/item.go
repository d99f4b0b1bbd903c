package component

// Item is a plain value keyed by its content ID (e.g. "Gumball"). It is
// copied into Inventory on pickup.
type Item struct {
	ID string
}

func (Item) Kind() InteractionKind { return KindItem }
func (Item) isPayload()            {}
