package component

import "project-bones/internal/ecs"

const (
	CSpawn      ecs.ComponentType = 12
	CBackground ecs.ComponentType = 13
)

// Spawn records the level identifier an entity was created from.
type Spawn struct {
	Identifier string
}

func (Spawn) Type() ecs.ComponentType { return CSpawn }

// Background marks purely decorative level objects.
type Background struct{}

func (Background) Type() ecs.ComponentType { return CBackground }
