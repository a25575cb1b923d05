package tui

import (
	"hstr/internal/engine"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap binds terminal keys to engine events. Printable keys that match no
// binding are typed into the query.
type keyMap struct {
	Regex     key.Binding
	Favorite  key.Binding
	Insert    key.Binding
	Run       key.Binding
	Case      key.Binding
	Quit      key.Binding
	View      key.Binding
	Backspace key.Binding
	Delete    key.Binding
	Up        key.Binding
	Down      key.Binding
	PageDown  key.Binding
	PageUp    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Regex:     key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("C-e", "regex")),
		Favorite:  key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("C-f", "add/rm fav")),
		Insert:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("TAB", "select")),
		Run:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("RET/TAB", "select")),
		Case:      key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("C-t", "case")),
		Quit:      key.NewBinding(key.WithKeys("esc", "ctrl+c", "ctrl+g"), key.WithHelp("ESC", "quit")),
		View:      key.NewBinding(key.WithKeys("ctrl+_", "ctrl+/"), key.WithHelp("C-/", "view")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("BACKSPACE", "erase")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("DEL", "remove")),
		Up:        key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("UP/DOWN", "move")),
		Down:      key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("DOWN", "move")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("PgDn", "next page")),
		PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("PgUp", "previous page")),
	}
}

// ShortHelp implements help.KeyMap; it is the footer shown under the prompt
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Run, k.Delete, k.Quit, k.Favorite}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Run, k.Insert, k.Delete, k.Favorite},
		{k.Regex, k.Case, k.View, k.Backspace, k.Quit},
	}
}

// events translates a key press into engine events. A pasted or multi-rune
// key message yields one Character event per rune.
func (k keyMap) events(msg tea.KeyMsg) []engine.Event {
	ev := func(kind engine.EventKind) []engine.Event { return []engine.Event{{Kind: kind}} }

	switch {
	case key.Matches(msg, k.Regex):
		return ev(engine.ToggleRegex)
	case key.Matches(msg, k.Favorite):
		return ev(engine.ToggleFavorite)
	case key.Matches(msg, k.Insert):
		return []engine.Event{{Kind: engine.Confirm}}
	case key.Matches(msg, k.Run):
		return []engine.Event{{Kind: engine.Confirm, Run: true}}
	case key.Matches(msg, k.Case):
		return ev(engine.ToggleCase)
	case key.Matches(msg, k.Quit):
		return ev(engine.Quit)
	case key.Matches(msg, k.View):
		return ev(engine.ToggleView)
	case key.Matches(msg, k.Backspace):
		return ev(engine.Backspace)
	case key.Matches(msg, k.Delete):
		return ev(engine.Delete)
	case key.Matches(msg, k.Up):
		return ev(engine.MoveUp)
	case key.Matches(msg, k.Down):
		return ev(engine.MoveDown)
	case key.Matches(msg, k.PageDown):
		return ev(engine.PageNext)
	case key.Matches(msg, k.PageUp):
		return ev(engine.PagePrev)
	}

	switch msg.Type {
	case tea.KeyRunes:
		out := make([]engine.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			out = append(out, engine.Event{Kind: engine.Character, Char: r})
		}
		return out
	case tea.KeySpace:
		return []engine.Event{{Kind: engine.Character, Char: ' '}}
	}
	return nil
}
