package render

import "github.com/gdamore/tcell/v2"

// Theme holds the colours used to draw one room. Emoji are rendered by the
// terminal with their own colours, so themes only tint backgrounds and text.
type Theme struct {
	Ground    tcell.Color // viewport background
	Highlight tcell.Color // background behind interactables in range
	Active    tcell.Color // background behind the controlled body part
	Text      tcell.Color
	Message   tcell.Color
	Rule      tcell.Color // HUD separator
}

// DefaultTheme is used for rooms without an entry in Themes.
var DefaultTheme = Theme{
	Ground:    tcell.ColorBlack,
	Highlight: tcell.ColorOlive,
	Active:    tcell.ColorNavy,
	Text:      tcell.ColorWhite,
	Message:   tcell.ColorLightYellow,
	Rule:      tcell.ColorGray,
}

// Themes maps room names to their colours.
var Themes = map[string]Theme{
	"floor_1": {
		Ground:    tcell.NewRGBColor(28, 20, 16),
		Highlight: tcell.ColorOlive,
		Active:    tcell.ColorNavy,
		Text:      tcell.ColorWheat,
		Message:   tcell.ColorLightYellow,
		Rule:      tcell.ColorSaddleBrown,
	},
	"crypt": {
		Ground:    tcell.NewRGBColor(12, 12, 24),
		Highlight: tcell.ColorDarkGreen,
		Active:    tcell.ColorPurple,
		Text:      tcell.ColorSilver,
		Message:   tcell.ColorLightCyan,
		Rule:      tcell.ColorDimGray,
	},
}

// ThemeFor returns the theme for room, falling back to DefaultTheme.
func ThemeFor(room string) Theme {
	if t, ok := Themes[room]; ok {
		return t
	}
	return DefaultTheme
}
