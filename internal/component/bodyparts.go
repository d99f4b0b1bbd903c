package component

import "project-bones/internal/ecs"

const CBodyParts ecs.ComponentType = 4

// PartRef points at a body-part entity by handle. The tag is cached so the
// cycle list can be read without touching the world.
type PartRef struct {
	Tag    PartTag
	Entity ecs.EntityID
}

// BodyParts is the player's ordered list of parts available for cycling and
// the cursor selecting the active one. The active part is always
// Parts[Index]; it is derived rather than stored so the two cannot diverge.
type BodyParts struct {
	Parts []PartRef
	Index int
}

func (BodyParts) Type() ecs.ComponentType { return CBodyParts }

// NewBodyParts starts the list as [Body] with the cursor on it.
func NewBodyParts(body ecs.EntityID) BodyParts {
	return BodyParts{Parts: []PartRef{{Tag: PartBody, Entity: body}}}
}

// Current returns the active part.
func (b BodyParts) Current() PartRef { return b.Parts[b.Index] }

// CurrentTag returns the tag of the active part.
func (b BodyParts) CurrentTag() PartTag { return b.Parts[b.Index].Tag }

// Len returns the number of parts in the cycle.
func (b BodyParts) Len() int { return len(b.Parts) }

// Tags lists the cycle in order.
func (b BodyParts) Tags() []PartTag {
	tags := make([]PartTag, len(b.Parts))
	for i, p := range b.Parts {
		tags[i] = p.Tag
	}
	return tags
}

// CycleForward advances the cursor, wrapping past the tail to 0.
func (b *BodyParts) CycleForward() PartRef {
	b.Index = (b.Index + 1) % len(b.Parts)
	return b.Current()
}

// CycleBackward retreats the cursor, wrapping below 0 to the tail.
func (b *BodyParts) CycleBackward() PartRef {
	b.Index = (b.Index - 1 + len(b.Parts)) % len(b.Parts)
	return b.Current()
}

// Append adds a newly detached part and moves the cursor onto it.
func (b *BodyParts) Append(ref PartRef) {
	parts := make([]PartRef, len(b.Parts), len(b.Parts)+1)
	copy(parts, b.Parts)
	b.Parts = append(parts, ref)
	b.Index = len(b.Parts) - 1
}
