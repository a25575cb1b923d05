package tui

import (
	"hstr/internal/config"

	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Theme holds every style the screen uses, derived from one catppuccin flavor
type Theme struct {
	flavor catppuccin.Flavor

	Prompt   lipgloss.Style
	Query    lipgloss.Style
	Label    lipgloss.Style
	Confirm  lipgloss.Style
	Error    lipgloss.Style
	Status   lipgloss.Style
	Entry    lipgloss.Style
	Favorite lipgloss.Style
	Match    lipgloss.Style
	Selected lipgloss.Style
	groups   map[string]lipgloss.Style
}

// NewTheme builds the styles for the named flavor (mocha, macchiato, frappe,
// latte). Unknown names fall back to mocha.
func NewTheme(name string, groups []config.CommandGroup) Theme {
	flavor := catppuccin.Variant(name)
	if flavor == nil {
		flavor = catppuccin.Mocha
	}
	c := func(col catppuccin.Color) lipgloss.Color { return lipgloss.Color(col.Hex) }

	t := Theme{
		flavor: flavor,

		Prompt: lipgloss.NewStyle().
			Foreground(c(flavor.Green())).
			Bold(true),

		Query: lipgloss.NewStyle().
			Foreground(c(flavor.Text())),

		Label: lipgloss.NewStyle().
			Foreground(c(flavor.Overlay1())),

		Confirm: lipgloss.NewStyle().
			Foreground(c(flavor.Peach())).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(c(flavor.Red())).
			Bold(true),

		Status: lipgloss.NewStyle().
			Background(c(flavor.Surface0())).
			Foreground(c(flavor.Subtext1())),

		Entry: lipgloss.NewStyle().
			Foreground(c(flavor.Text())),

		Favorite: lipgloss.NewStyle().
			Foreground(c(flavor.Sky())),

		Match: lipgloss.NewStyle().
			Foreground(c(flavor.Pink())).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(c(flavor.Surface1())).
			Bold(true),

		groups: make(map[string]lipgloss.Style, len(groups)),
	}

	for _, g := range groups {
		style := lipgloss.NewStyle().Foreground(t.ColorByName(g.Color)).Bold(g.Bold)
		t.groups[g.Name] = style
	}
	return t
}

// ColorByName maps a catppuccin color name (e.g. "red", "mauve") to a color
// of the current flavor. Unknown names map to the text color.
func (t Theme) ColorByName(name string) lipgloss.Color {
	colors := map[string]func() catppuccin.Color{
		"rosewater": t.flavor.Rosewater,
		"flamingo":  t.flavor.Flamingo,
		"pink":      t.flavor.Pink,
		"mauve":     t.flavor.Mauve,
		"red":       t.flavor.Red,
		"maroon":    t.flavor.Maroon,
		"peach":     t.flavor.Peach,
		"yellow":    t.flavor.Yellow,
		"green":     t.flavor.Green,
		"teal":      t.flavor.Teal,
		"sky":       t.flavor.Sky,
		"sapphire":  t.flavor.Sapphire,
		"blue":      t.flavor.Blue,
		"lavender":  t.flavor.Lavender,
		"subtext":   t.flavor.Subtext0,
		"overlay":   t.flavor.Overlay1,
	}
	if fn, ok := colors[name]; ok {
		return lipgloss.Color(fn().Hex)
	}
	return lipgloss.Color(t.flavor.Text().Hex)
}

// EntryStyle returns the base style for a history entry. Favorites win over
// command groups.
func (t Theme) EntryStyle(favorite bool, group *config.CommandGroup) lipgloss.Style {
	if favorite {
		return t.Favorite
	}
	if group != nil {
		if s, ok := t.groups[group.Name]; ok {
			return s
		}
	}
	return t.Entry
}
