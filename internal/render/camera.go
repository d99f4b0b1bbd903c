package render

import "math"

// Camera translates between world coordinates and screen coordinates.
// World Y points up while screen rows grow downward. A cell is one row
// tall and two columns wide, since emoji occupy 2 terminal columns.
type Camera struct {
	CenterX     float64
	CenterY     float64
	UnitsPerRow float64
	ViewWidth   int // in terminal columns
	ViewHeight  int // in terminal rows
}

// NewCamera creates a camera centered on the world origin.
func NewCamera(unitsPerRow float64, viewW, viewH int) *Camera {
	return &Camera{UnitsPerRow: unitsPerRow, ViewWidth: viewW, ViewHeight: viewH}
}

// Center repositions the camera so that world position (cx, cy) is in the middle.
func (c *Camera) Center(cx, cy float64) {
	c.CenterX, c.CenterY = cx, cy
}

// WorldToScreen converts world (wx, wy) to screen (sx, sy). The column is
// snapped to an even offset from the centre so wide glyphs line up.
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy int, visible bool) {
	cellX := int(math.Floor((wx-c.CenterX)/c.UnitsPerRow + 0.5))
	cellY := int(math.Floor((wy-c.CenterY)/c.UnitsPerRow + 0.5))
	sx = (c.ViewWidth/2)&^1 + cellX*2
	sy = c.ViewHeight/2 - cellY
	visible = sx >= 0 && sx+1 < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to the world position at the
// centre of that cell.
func (c *Camera) ScreenToWorld(sx, sy int) (float64, float64) {
	cellX := (sx - (c.ViewWidth/2)&^1) / 2
	cellY := c.ViewHeight/2 - sy
	return c.CenterX + float64(cellX)*c.UnitsPerRow, c.CenterY + float64(cellY)*c.UnitsPerRow
}
