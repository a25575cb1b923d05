package tui

import (
	"hstr/internal/config"
	"hstr/internal/engine"
	"hstr/internal/store"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// filterHint leads the key help on the second row
const filterHint = "Type to filter"

// ModelOptions configures a new Model
type ModelOptions struct {
	Engine  *engine.Engine
	Config  *config.Config
	Watcher *store.Watcher // optional; nil disables live reload
	Prompt  string
}

// Model represents the application state
type Model struct {
	engine  *engine.Engine
	cfg     *config.Config
	watcher *store.Watcher
	theme   Theme
	keys    keyMap
	help    help.Model
	prompt  string

	// confirming is set while the delete prompt is on screen
	confirming bool

	// accepted holds the selection once the user picked an entry
	accepted *engine.Result

	// UI dimensions
	width  int
	height int

	// Error from the last store operation, shown until the next key
	err error
}

// NewModel creates a new Model with initialized state
func NewModel(opts ModelOptions) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	theme := NewTheme(cfg.Theme, cfg.CommandGroups)
	return Model{
		engine:  opts.Engine,
		cfg:     cfg,
		watcher: opts.Watcher,
		theme:   theme,
		keys:    defaultKeyMap(),
		help:    newHelp(theme),
		prompt:  opts.Prompt,
	}
}

// newHelp styles the key help footer with the theme's label colors
func newHelp(theme Theme) help.Model {
	h := help.New()
	h.ShortSeparator = ", "
	h.Styles.ShortKey = theme.Label.Bold(true)
	h.Styles.ShortDesc = theme.Label
	h.Styles.ShortSeparator = theme.Label
	h.Styles.Ellipsis = theme.Label
	return h
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.watchHistoryCmd()
}

// Accepted returns the entry the user selected, if any
func (m Model) Accepted() (engine.Result, bool) {
	if m.accepted == nil {
		return engine.Result{}, false
	}
	return *m.accepted, true
}

// Message types
type (
	historyChangedMsg store.ChangeEvent
	errMsg            struct{ error }
)

// watchHistoryCmd returns a command that waits for the next history change
func (m Model) watchHistoryCmd() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case event := <-m.watcher.Events:
			return historyChangedMsg(event)
		case err := <-m.watcher.Errors:
			return errMsg{err}
		}
	}
}

// listHeight returns the number of rows available for entries
func (m Model) listHeight() int {
	return max(m.height-headerRows, 1)
}
