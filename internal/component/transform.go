package component

import (
	"math"

	"project-bones/internal/ecs"
)

const CTransform ecs.ComponentType = 1

// Transform is an entity's world-space translation. Y grows upward; Z only
// orders drawing.
type Transform struct {
	X, Y, Z float64
}

func (Transform) Type() ecs.ComponentType { return CTransform }

// Translate returns t moved by (dx, dy).
func (t Transform) Translate(dx, dy float64) Transform {
	t.X += dx
	t.Y += dy
	return t
}

// Distance is the planar Euclidean distance between t and o.
func (t Transform) Distance(o Transform) float64 {
	return math.Hypot(o.X-t.X, o.Y-t.Y)
}
