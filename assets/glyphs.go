// Package assets holds the glyph tables used to draw level entities.
package assets

// Emoji constants used as entity glyphs.
const (
	GlyphBody     = "💀"
	GlyphArm      = "🦴"
	GlyphLeg      = "🦵"
	GlyphHead     = "🧠"
	GlyphPerson   = "🧑"
	GlyphGum      = "🍬"
	GlyphVendor   = "🏪"
	GlyphDoor     = "🚪"
	GlyphDoorOpen = "🔓"
	GlyphPuzzle   = "🧩"
	GlyphBanner   = "🎏"
	GlyphStool    = "🪑"
	GlyphTable    = "☕"
	GlyphUnknown  = "❔"
)

// Level identifiers understood by the spawner.
const (
	IDPlayerStart = "Player_start"
	IDNPCSpawn    = "NPC_spawn"
	IDGumMachine  = "Gum_Machine"
	IDVendor      = "Vendor"
	IDBanner      = "Banner"
	IDStool       = "Stool"
	IDCoffeeTable = "Coffee_Table"
)

// spawnGlyphs maps level identifiers to their glyph.
var spawnGlyphs = map[string]string{
	IDNPCSpawn:    GlyphPerson,
	IDGumMachine:  GlyphGum,
	IDVendor:      GlyphVendor,
	IDBanner:      GlyphBanner,
	IDStool:       GlyphStool,
	IDCoffeeTable: GlyphTable,
}

// backgroundIDs lists identifiers that are scenery only.
var backgroundIDs = map[string]bool{
	IDBanner:      true,
	IDStool:       true,
	IDCoffeeTable: true,
}

// GlyphFor returns the glyph for a level identifier. Anything unknown is
// spawned as a door, so it is drawn as one.
func GlyphFor(identifier string) string {
	if g, ok := spawnGlyphs[identifier]; ok {
		return g
	}
	return GlyphDoor
}

// IsBackground reports whether identifier names a decorative object.
func IsBackground(identifier string) bool { return backgroundIDs[identifier] }
