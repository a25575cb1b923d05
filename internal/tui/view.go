package tui

import (
	"fmt"
	"strings"
	"unicode"

	"hstr/internal/history"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// headerRows is the number of rows View draws above the entry list
const headerRows = 3

// View renders the UI based on the model state
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	cur := m.engine.Cursor()
	rows := make([]string, 0, headerRows+cur.Capacity())
	rows = append(rows, m.renderPrompt(), m.renderMessage(), m.renderStatus())

	matcher := m.engine.Session().Matcher()
	for i, entry := range m.engine.Page() {
		rows = append(rows, m.renderEntry(entry, i == cur.Selected, matcher))
	}

	// a terminal shorter than the header still gets one entry row; drop the
	// rows that would not fit
	if m.height > 0 && len(rows) > m.height {
		rows = rows[:m.height]
	}
	return strings.Join(rows, "\n")
}

// renderPrompt renders "user@host$ query" on the first row
func (m Model) renderPrompt() string {
	prompt := runewidth.Truncate(m.prompt, m.width, "")
	room := m.width - runewidth.StringWidth(prompt) - 1
	if room <= 0 {
		return m.theme.Prompt.Render(prompt)
	}
	// keep the end of a long query visible
	query := m.engine.Session().Query()
	if over := runewidth.StringWidth(query) - room; over > 0 {
		query = runewidth.TruncateLeft(query, over, "")
	}
	return m.theme.Prompt.Render(prompt) + " " + m.theme.Query.Render(query)
}

// renderMessage renders the help label, the delete prompt or the last error
func (m Model) renderMessage() string {
	switch {
	case m.confirming:
		entry, _ := m.engine.Pending()
		msg := fmt.Sprintf("Do you want to delete all occurrences of %s? y/n", entry)
		return m.theme.Confirm.Render(runewidth.Truncate(msg, m.width, "…"))
	case m.err != nil:
		msg := fmt.Sprintf("Error: %v", m.err)
		return m.theme.Error.Render(runewidth.Truncate(msg, m.width, "…"))
	default:
		return m.renderHelp()
	}
}

// renderHelp renders the filter hint followed by the short key help, cut
// with an ellipsis when the terminal is too narrow
func (m Model) renderHelp() string {
	prefix := filterHint + m.help.ShortSeparator
	room := m.width - runewidth.StringWidth(prefix)
	if room <= 0 {
		return m.theme.Label.Render(runewidth.Truncate(filterHint, m.width, "…"))
	}
	h := m.help
	h.Width = room
	return m.theme.Label.Render(prefix) + h.ShortHelpView(m.keys.ShortHelp())
}

// renderStatus renders the mode and page indicator bar
func (m Model) renderStatus() string {
	mode := m.engine.Session().Mode()

	regex := "off"
	if mode.Regex {
		regex = "on"
	}
	sensitivity := "insensitive"
	if mode.CaseSensitive {
		sensitivity = "sensitive"
	}

	status := fmt.Sprintf("- view:%s (C-/) - regex:%s (C-e) - case:%s (C-t) - page %d/%d -",
		mode.View, regex, sensitivity, m.engine.Cursor().Page, max(m.engine.Pages(), 1))
	status = runewidth.Truncate(status, m.width, "")
	return m.theme.Status.Width(m.width).Render(status)
}

// renderEntry renders one history row with matched characters highlighted
func (m Model) renderEntry(entry string, selected bool, matcher *history.Matcher) string {
	base := m.theme.EntryStyle(m.engine.Session().IsFavorite(entry), m.cfg.GroupFor(entry))
	if selected {
		base = m.theme.Selected.Inherit(base)
	}
	match := m.theme.Match.Inherit(base)

	runes := fitRunes(printable(entry), m.width)
	highlighted := make(map[int]bool)
	for _, i := range matcher.Highlight(entry) {
		highlighted[i] = true
	}

	var b strings.Builder
	start := 0
	for i := 1; i <= len(runes); i++ {
		if i < len(runes) && highlighted[i] == highlighted[start] {
			continue
		}
		style := base
		if highlighted[start] {
			style = match
		}
		b.WriteString(style.Render(string(runes[start:i])))
		start = i
	}

	if selected {
		if pad := m.width - lipgloss.Width(b.String()); pad > 0 {
			b.WriteString(base.Render(strings.Repeat(" ", pad)))
		}
	}
	return b.String()
}

// printable returns the runes of s with control characters replaced, one
// rune for one rune so highlight indices stay aligned
func printable(s string) []rune {
	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == '\t':
			runes[i] = ' '
		case unicode.IsControl(r):
			runes[i] = '?'
		}
	}
	return runes
}

// fitRunes returns the longest prefix of runes that fits in width cells
func fitRunes(runes []rune, width int) []rune {
	w := 0
	for i, r := range runes {
		rw := runewidth.RuneWidth(r)
		if w+rw > width {
			return runes[:i]
		}
		w += rw
	}
	return runes
}
