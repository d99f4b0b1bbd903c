package render

import (
	"sort"

	"project-bones/assets"
	"project-bones/internal/component"
	"project-bones/internal/ecs"
	"project-bones/internal/session"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the number of rows reserved at the bottom for the HUD.
const hudRows = 6

// Renderer draws the game world onto a tcell screen.
type Renderer struct {
	screen      tcell.Screen
	camera      *Camera
	unitsPerRow float64
	theme       Theme
}

// NewRenderer creates a Renderer for the given screen. unitsPerRow is the
// world height of one terminal row before the camera zoom is applied.
func NewRenderer(screen tcell.Screen, unitsPerRow float64) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen:      screen,
		camera:      NewCamera(unitsPerRow, w, viewHeight(h)),
		unitsPerRow: unitsPerRow,
		theme:       DefaultTheme,
	}
}

func viewHeight(screenH int) int {
	if screenH <= hudRows {
		return 0
	}
	return screenH - hudRows
}

// SetRoom switches the colour theme.
func (r *Renderer) SetRoom(room string) { r.theme = ThemeFor(room) }

// Camera exposes the viewport mapping, kept in sync by DrawFrame.
func (r *Renderer) Camera() *Camera { return r.camera }

// Resize refits the viewport after the terminal changes size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth, r.camera.ViewHeight = w, viewHeight(h)
}

// DrawFrame renders entities and the HUD from the camera entity's view.
func (r *Renderer) DrawFrame(s *session.Session) {
	r.screen.Clear()
	r.syncCamera(s)
	r.fillGround()
	r.drawEntities(s)
	r.DrawHUD(s)
}

func (r *Renderer) syncCamera(s *session.Session) {
	scale := 1.0
	if c := s.World.Get(s.Camera, component.CCamera); c != nil {
		if cam := c.(component.Camera); cam.Scale > 0 {
			scale = cam.Scale
		}
	}
	r.camera.UnitsPerRow = r.unitsPerRow * scale
	at := s.CameraTransform()
	r.camera.Center(at.X, at.Y)
}

func (r *Renderer) fillGround() {
	style := tcell.StyleDefault.Background(r.theme.Ground)
	for y := 0; y < r.camera.ViewHeight; y++ {
		for x := 0; x < r.camera.ViewWidth; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// renderableEntity holds sorting info for entity rendering.
type renderableEntity struct {
	id    ecs.EntityID
	order int
	pos   component.Transform
	rend  component.Renderable
}

// drawEntities renders all entities with Renderable + Transform, ordered by
// RenderOrder and then by height so nearer objects overlap farther ones.
func (r *Renderer) drawEntities(s *session.Session) {
	w := s.World
	ids := w.Query(component.CRenderable, component.CTransform)
	entities := make([]renderableEntity, 0, len(ids))
	for _, id := range ids {
		entities = append(entities, renderableEntity{
			id:    id,
			order: w.Get(id, component.CRenderable).(component.Renderable).RenderOrder,
			pos:   w.Get(id, component.CTransform).(component.Transform),
			rend:  w.Get(id, component.CRenderable).(component.Renderable),
		})
	}
	sort.SliceStable(entities, func(i, j int) bool {
		if entities[i].order != entities[j].order {
			return entities[i].order < entities[j].order
		}
		return entities[i].pos.Z < entities[j].pos.Z
	})

	active, _ := s.ActiveTransform()
	for _, e := range entities {
		sx, sy, onScreen := r.camera.WorldToScreen(e.pos.X, e.pos.Y)
		if !onScreen {
			continue
		}
		glyph, style := r.appearance(w, e, active)
		r.putGlyph(sx, sy, glyph, style)
	}
}

// appearance picks the glyph and style for one entity: open doors swap
// glyphs, interactables in range and the active part get a background.
func (r *Renderer) appearance(w *ecs.World, e renderableEntity, active ecs.EntityID) (string, tcell.Style) {
	glyph := e.rend.Glyph
	style := tcell.StyleDefault.Foreground(e.rend.FGColor).Background(r.theme.Ground)
	if e.id == active {
		return glyph, style.Background(r.theme.Active).Bold(true)
	}
	if c := w.Get(e.id, component.CInteractable); c != nil {
		inter := c.(component.Interactable)
		if d, ok := inter.Payload.(component.Door); ok && !d.Closed {
			glyph = assets.GlyphDoorOpen
		}
		if inter.CanInteract {
			style = style.Background(r.theme.Highlight)
		}
	}
	return glyph, style
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
