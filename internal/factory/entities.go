package factory

import (
	"log/slog"

	"project-bones/assets"
	"project-bones/internal/component"
	"project-bones/internal/ecs"
	"project-bones/internal/level"

	"github.com/gdamore/tcell/v2"
)

// Draw depths. Body parts sit above interactables, which sit above scenery.
const (
	depthBackground = 0
	depthObject     = 1
	depthBodyPart   = 2
	depthCamera     = 999
)

// NewBodyPart creates a body-part entity tagged tag at (x, y).
func NewBodyPart(w *ecs.World, tag component.PartTag, x, y float64) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Transform{X: x, Y: y, Z: depthBodyPart})
	w.Add(id, component.BodyPart{Tag: tag})
	w.Add(id, component.Renderable{
		Glyph:       partGlyph(tag),
		FGColor:     tcell.ColorWhite,
		BGColor:     tcell.ColorDefault,
		RenderOrder: 10,
	})
	return id
}

// NewDetachedLimb creates a limb split off the body. It asks the physics
// collaborator for a dynamic rigid body with a circular collider.
func NewDetachedLimb(w *ecs.World, tag component.PartTag, x, y, radius float64) ecs.EntityID {
	id := NewBodyPart(w, tag, x, y)
	w.Add(id, component.Renderable{
		Glyph:       partGlyph(tag),
		FGColor:     tcell.ColorOrangeRed,
		BGColor:     tcell.ColorDefault,
		RenderOrder: 11,
	})
	w.Add(id, component.RigidBody{Kind: component.BodyDynamic})
	w.Add(id, component.Collider{Radius: radius})
	return id
}

// NewPlayerParent creates the player aggregate owning the body-part cycle,
// the inventory and the aim origin. body is the Body entity.
func NewPlayerParent(w *ecs.World, body ecs.EntityID) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Player{Mode: component.ModeMoving})
	w.Add(id, component.NewBodyParts(body))
	w.Add(id, component.Inventory{})
	w.Add(id, component.ArmVec{})
	return id
}

// NewCamera creates the camera centred on at.
func NewCamera(w *ecs.World, at component.Transform, scale float64) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Camera{Scale: scale})
	w.Add(id, component.Transform{X: at.X, Y: at.Y, Z: depthCamera})
	return id
}

// InteractableFor builds the Interactable for a level identifier.
// Unrecognised identifiers become a default door.
func InteractableFor(identifier string) component.Interactable {
	switch identifier {
	case assets.IDNPCSpawn:
		return component.NewInteractable(component.Person{})
	case assets.IDGumMachine:
		return component.NewInteractable(component.Item{ID: "Gumball"})
	case assets.IDVendor:
		return component.NewInteractable(component.Item{})
	}
	return component.NewInteractable(component.NewDoor())
}

// NewInteractable creates an interactable entity from a spawn record.
// Requirements on the record apply only to doors and dialogue only to
// people. Dialogue that fails to build is logged and the person is left
// silent.
func NewInteractable(w *ecs.World, rec level.SpawnRecord) ecs.EntityID {
	inter := InteractableFor(rec.Identifier)
	switch p := inter.Payload.(type) {
	case component.Door:
		if len(rec.Requires) > 0 {
			p.Requirements = append([]string(nil), rec.Requires...)
			inter.Payload = p
		}
	case component.Person:
		nodes, err := rec.Conversation()
		if err != nil {
			slog.Warn("dropping dialogue", "id", rec.Identifier, "err", err)
		}
		p.Dialogue = nodes
		inter.Payload = p
	}

	id := w.CreateEntity()
	w.Add(id, component.Transform{X: rec.X, Y: rec.Y, Z: depthObject})
	w.Add(id, inter)
	w.Add(id, component.Spawn{Identifier: rec.Identifier})
	w.Add(id, component.Renderable{
		Glyph:       assets.GlyphFor(rec.Identifier),
		FGColor:     tcell.ColorGreen,
		BGColor:     tcell.ColorDefault,
		RenderOrder: 5,
	})
	return id
}

// NewBackground creates a decorative, non-interactive object.
func NewBackground(w *ecs.World, rec level.SpawnRecord) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Transform{X: rec.X, Y: rec.Y, Z: depthBackground})
	w.Add(id, component.Background{})
	w.Add(id, component.Spawn{Identifier: rec.Identifier})
	w.Add(id, component.Renderable{
		Glyph:       assets.GlyphFor(rec.Identifier),
		FGColor:     tcell.ColorGray,
		BGColor:     tcell.ColorDefault,
		RenderOrder: 1,
	})
	return id
}

// Spawn creates whatever entity rec describes and returns it.
func Spawn(w *ecs.World, rec level.SpawnRecord) ecs.EntityID {
	switch {
	case rec.Identifier == assets.IDPlayerStart:
		return NewBodyPart(w, component.PartBody, rec.X, rec.Y)
	case assets.IsBackground(rec.Identifier):
		return NewBackground(w, rec)
	default:
		return NewInteractable(w, rec)
	}
}

// SpawnLevel spawns every record of lv in order.
func SpawnLevel(w *ecs.World, lv level.Level) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, len(lv.Spawns))
	for _, rec := range lv.Spawns {
		ids = append(ids, Spawn(w, rec))
	}
	return ids
}

func partGlyph(tag component.PartTag) string {
	switch tag {
	case component.PartBody:
		return assets.GlyphBody
	case component.PartLeftArm, component.PartRightArm:
		return assets.GlyphArm
	case component.PartLeftLeg, component.PartRightLeg:
		return assets.GlyphLeg
	case component.PartHead:
		return assets.GlyphHead
	}
	return assets.GlyphUnknown
}
