package render

import (
	"fmt"
	"strings"

	"project-bones/internal/component"
	"project-bones/internal/session"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudMessages is how many of the latest messages the HUD shows.
const hudMessages = 3

// DrawHUD renders the body-part bar, the inventory and the message log at
// the bottom of the screen.
func (r *Renderer) DrawHUD(s *session.Session) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, r.theme.Rule)
	text := tcell.StyleDefault.Foreground(r.theme.Text)
	r.drawText(0, hudY+1, PartsLine(s.BodyParts()), text)
	r.drawText(0, hudY+2, InventoryLine(s.Inventory()), text)

	msgStyle := tcell.StyleDefault.Foreground(r.theme.Message)
	for i, msg := range LatestMessages(s.Messages, hudMessages) {
		r.drawText(0, hudY+3+i, msg, msgStyle)
	}
}

// PartsLine lists the body-part cycle with the active part bracketed.
func PartsLine(b component.BodyParts) string {
	tags := b.Tags()
	names := make([]string, len(tags))
	for i, t := range tags {
		if i == b.Index {
			names[i] = "[" + t.String() + "]"
		} else {
			names[i] = t.String()
		}
	}
	return fmt.Sprintf("Controlling: %s   %s", b.CurrentTag(), strings.Join(names, " > "))
}

// InventoryLine shows every slot; "?" marks an item with no name.
func InventoryLine(inv component.Inventory) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Inventory %d/%d:", inv.Count(), component.InventorySize)
	for _, slot := range inv.Slots {
		switch {
		case !slot.Occupied:
			sb.WriteString(" [ ]")
		case slot.Item.ID == "":
			sb.WriteString(" [?]")
		default:
			sb.WriteString(" [" + slot.Item.ID + "]")
		}
	}
	return sb.String()
}

// LatestMessages returns the last n messages, oldest first.
func LatestMessages(messages []string, n int) []string {
	start := len(messages) - n
	if start < 0 {
		start = 0
	}
	return messages[start:]
}

// DrawMenu clears the screen and centres a title with lines beneath it.
func (r *Renderer) DrawMenu(title string, lines ...string) {
	r.screen.Clear()
	w, h := r.screen.Size()
	top := (h - len(lines) - 2) / 2
	r.drawCentered(w, top, title, tcell.StyleDefault.Foreground(r.theme.Text).Bold(true))
	for i, line := range lines {
		r.drawCentered(w, top+2+i, line, tcell.StyleDefault.Foreground(r.theme.Message))
	}
}

// DrawPause overlays a banner on the current frame.
func (r *Renderer) DrawPause() {
	w, h := r.screen.Size()
	r.drawCentered(w, viewHeight(h)/2, " PAUSED  (p to resume) ",
		tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(r.theme.Text))
}

// Show flushes the drawn frame to the terminal.
func (r *Renderer) Show() { r.screen.Show() }

func (r *Renderer) drawCentered(screenW, y int, text string, style tcell.Style) {
	x := (screenW - runewidth.StringWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	r.drawText(x, y, text, style)
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text left to right, advancing by each rune's cell width.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(runewidth.RuneWidth(ch), 1)
	}
}
