package component

import "project-bones/internal/ecs"

const CCamera ecs.ComponentType = 9

// Camera marks the single view entity. Its Transform is the view centre;
// Scale is the zoom factor applied to render.units_per_row; below 1 zooms
// in.
type Camera struct {
	Scale float64
}

func (Camera) Type() ecs.ComponentType { return CCamera }
