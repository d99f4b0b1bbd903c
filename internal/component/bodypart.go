package component

import "project-bones/internal/ecs"

const CBodyPart ecs.ComponentType = 2

// PartTag names one detachable piece of the player.
type PartTag uint8

const (
	PartBody PartTag = iota
	PartLeftArm
	PartRightArm
	PartLeftLeg
	PartRightLeg
	PartHead
)

var partNames = [...]string{"Body", "LeftArm", "RightArm", "LeftLeg", "RightLeg", "Head"}

func (p PartTag) String() string {
	if int(p) < len(partNames) {
		return partNames[p]
	}
	return "Unknown"
}

// IsArm reports whether p is one of the aimable limbs.
func (p PartTag) IsArm() bool { return p == PartLeftArm || p == PartRightArm }

// BodyPart tags an entity as a piece of the player. Each body-part entity
// carries exactly one tag plus a Transform.
type BodyPart struct {
	Tag PartTag
}

func (BodyPart) Type() ecs.ComponentType { return CBodyPart }
