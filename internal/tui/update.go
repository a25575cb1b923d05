package tui

import (
	"hstr/internal/engine"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.engine.SetCapacity(m.listHeight())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case historyChangedMsg:
		m.err = m.engine.Reload()
		return m, m.watchHistoryCmd()

	case errMsg:
		m.err = msg.error
		return m, m.watchHistoryCmd()
	}
	return m, nil
}

// handleKey answers the delete prompt or feeds the key to the engine
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil

	if m.confirming {
		m.confirming = false
		res := m.engine.ResolveDelete(msg.String() == "y")
		m.err = res.Err
		return m, nil
	}

	for _, ev := range m.keys.events(msg) {
		res := m.engine.Handle(ev)
		if res.Err != nil {
			m.err = res.Err
		}

		switch res.Action {
		case engine.Exit:
			return m, tea.Quit
		case engine.Accept:
			m.accepted = &res
			return m, tea.Quit
		case engine.NeedConfirm:
			m.confirming = true
			return m, nil
		}
	}
	return m, nil
}
