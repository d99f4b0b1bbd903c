package component

import "project-bones/internal/ecs"

const (
	CRigidBody ecs.ComponentType = 10
	CCollider  ecs.ComponentType = 11
)

// BodyKind is the simulation mode requested from the physics collaborator.
type BodyKind uint8

const (
	BodyFixed BodyKind = iota
	BodyDynamic
)

// RigidBody asks the physics collaborator to simulate this entity.
type RigidBody struct {
	Kind BodyKind
}

func (RigidBody) Type() ecs.ComponentType { return CRigidBody }

// Collider is a circular collision shape centred on the Transform.
type Collider struct {
	Radius float64
}

func (Collider) Type() ecs.ComponentType { return CCollider }
