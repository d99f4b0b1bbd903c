package render

import (
	"io"
	"log/slog"
	"testing"

	"project-bones/internal/component"
	"project-bones/internal/config"
	"project-bones/internal/factory"
	"project-bones/internal/level"
	"project-bones/internal/session"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, ss.Init())
	ss.SetSize(80, 24)
	t.Cleanup(ss.Fini)
	return ss
}

func newRenderSession() *session.Session {
	s := session.New(config.Default(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	body := factory.NewBodyPart(s.World, component.PartBody, 0, 0)
	s.Player = factory.NewPlayerParent(s.World, body)
	s.Camera = factory.NewCamera(s.World, component.Transform{}, 1)
	return s
}

func TestCameraWorldToScreen(t *testing.T) {
	c := NewCamera(10, 80, 18)

	tests := []struct {
		name    string
		wx, wy  float64
		sx, sy  int
		visible bool
	}{
		{"origin is centre", 0, 0, 40, 9, true},
		{"one cell right is two columns", 10, 0, 42, 9, true},
		{"world up is screen up", 0, 10, 40, 8, true},
		{"rounds to nearest cell", 14, -6, 42, 10, true},
		{"far left is clipped", -400, 0, -40, 9, false},
		{"below viewport is clipped", 0, -100, 40, 19, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sx, sy, visible := c.WorldToScreen(tt.wx, tt.wy)
			assert.Equal(t, tt.sx, sx)
			assert.Equal(t, tt.sy, sy)
			assert.Equal(t, tt.visible, visible)
		})
	}
}

func TestCameraFollowsCentre(t *testing.T) {
	c := NewCamera(10, 80, 18)
	c.Center(100, 50)

	sx, sy, visible := c.WorldToScreen(100, 50)
	assert.True(t, visible)
	assert.Equal(t, 40, sx)
	assert.Equal(t, 9, sy)

	x, y := c.ScreenToWorld(42, 8)
	assert.Equal(t, 110.0, x)
	assert.Equal(t, 60.0, y)
}

func TestPartsLine(t *testing.T) {
	b := component.NewBodyParts(1)
	assert.Equal(t, "Controlling: Body   [Body]", PartsLine(b))

	b.Append(component.PartRef{Tag: component.PartLeftArm, Entity: 2})
	assert.Equal(t, "Controlling: LeftArm   Body > [LeftArm]", PartsLine(b))
}

func TestInventoryLine(t *testing.T) {
	var inv component.Inventory
	inv.Store(component.Item{ID: "Gumball"})
	inv.Store(component.Item{})

	assert.Equal(t, "Inventory 2/8: [Gumball] [?] [ ] [ ] [ ] [ ] [ ] [ ]", InventoryLine(inv))
}

func TestLatestMessages(t *testing.T) {
	assert.Empty(t, LatestMessages(nil, 3))
	assert.Equal(t, []string{"a"}, LatestMessages([]string{"a"}, 3))
	assert.Equal(t, []string{"b", "c", "d"}, LatestMessages([]string{"a", "b", "c", "d"}, 3))
}

func TestDrawFrame(t *testing.T) {
	ss := newSimScreen(t)
	s := newRenderSession()

	gum := factory.NewInteractable(s.World, level.SpawnRecord{Identifier: "Gum_Machine", X: 20, Y: 0})
	inter := s.World.Get(gum, component.CInteractable).(component.Interactable)
	inter.CanInteract = true
	s.World.Add(gum, inter)

	door := factory.NewInteractable(s.World, level.SpawnRecord{Identifier: "Door", X: -20, Y: 0})
	open := component.NewDoor().Unlocked()
	s.World.Add(door, component.NewInteractable(open))
	s.Say("hello")

	r := NewRenderer(ss, 10)
	r.DrawFrame(s)

	// 80x24 screen leaves an 18-row viewport centred on (40, 9).
	mainc, _, style, _ := ss.GetContent(40, 9)
	assert.Equal(t, '💀', mainc)
	_, bg, _ := style.Decompose()
	assert.Equal(t, DefaultTheme.Active, bg)

	mainc, _, style, _ = ss.GetContent(44, 9)
	assert.Equal(t, '🍬', mainc)
	_, bg, _ = style.Decompose()
	assert.Equal(t, DefaultTheme.Highlight, bg)

	mainc, _, _, _ = ss.GetContent(36, 9)
	assert.Equal(t, '🔓', mainc)

	mainc, _, _, _ = ss.GetContent(0, 18)
	assert.Equal(t, '─', mainc)
	mainc, _, _, _ = ss.GetContent(0, 19)
	assert.Equal(t, 'C', mainc)
	mainc, _, _, _ = ss.GetContent(0, 21)
	assert.Equal(t, 'h', mainc)
}

func TestDrawFrameAppliesCameraZoom(t *testing.T) {
	ss := newSimScreen(t)
	s := newRenderSession()
	s.World.Add(s.Camera, component.Camera{Scale: 2})
	factory.NewInteractable(s.World, level.SpawnRecord{Identifier: "Gum_Machine", X: 40, Y: 0})

	r := NewRenderer(ss, 10)
	r.DrawFrame(s)

	// 20 units per row puts x=40 two cells right of centre.
	assert.Equal(t, 20.0, r.Camera().UnitsPerRow)
	mainc, _, _, _ := ss.GetContent(44, 9)
	assert.Equal(t, '🍬', mainc)
}

func TestSetRoomSwitchesTheme(t *testing.T) {
	ss := newSimScreen(t)
	r := NewRenderer(ss, 10)

	r.SetRoom("crypt")
	assert.Equal(t, Themes["crypt"], r.theme)
	r.SetRoom("nowhere")
	assert.Equal(t, DefaultTheme, r.theme)
}
