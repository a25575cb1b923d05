// Package engine turns user events into session and cursor updates. It owns
// no terminal state and is driven by the TUI.
package engine

import (
	"hstr/internal/history"
	"hstr/internal/pager"

	"go.uber.org/zap"
)

// Engine combines a history session with the on-screen cursor
type Engine struct {
	session *history.Session
	cursor  *pager.Cursor
	logger  *zap.Logger

	pending    string
	hasPending bool
}

// New wraps a loaded session. capacity is the number of rows per page.
func New(session *history.Session, capacity int, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		session: session,
		cursor:  pager.New(capacity),
		logger:  logger,
	}
}

// Handle applies ev and reports what the caller should do next
func (e *Engine) Handle(ev Event) Result {
	switch ev.Kind {
	case Character:
		e.session.AppendQuery(ev.Char)
		if e.session.Mode().Regex {
			e.session.Restore()
		}
		e.session.Search()
		e.cursor.Reset()

	case Backspace:
		e.session.TrimQuery()
		e.research()

	case ToggleCase:
		e.session.ToggleCase()
		e.research()

	case ToggleRegex:
		e.session.ToggleRegex()
		e.research()

	case ToggleView:
		e.session.ToggleView()
		e.research()

	case MoveUp:
		e.cursor.MoveSelection(len(e.session.Entries()), -1)

	case MoveDown:
		e.cursor.MoveSelection(len(e.session.Entries()), 1)

	case PageNext:
		e.cursor.GotoPage(len(e.session.Entries()), 1)

	case PagePrev:
		e.cursor.GotoPage(len(e.session.Entries()), -1)

	case ToggleFavorite:
		entry, ok := e.Selected()
		if !ok {
			return Result{}
		}
		added := !e.session.IsFavorite(entry)
		if err := e.keepCursor(func() error { return e.session.ToggleFavorite(entry) }); err != nil {
			e.logger.Warn("toggle favorite failed", zap.String("entry", entry), zap.Error(err))
			return Result{Err: err}
		}
		e.logger.Info("favorite toggled", zap.String("entry", entry), zap.Bool("added", added))

	case Delete:
		entry, ok := e.Selected()
		if !ok {
			return Result{}
		}
		e.pending, e.hasPending = entry, true
		return Result{Action: NeedConfirm, Entry: entry}

	case Confirm:
		entry, ok := e.Selected()
		if !ok {
			return Result{}
		}
		return Result{Action: Accept, Entry: entry, Run: ev.Run}

	case Quit:
		return Result{Action: Exit}
	}
	return Result{}
}

// ResolveDelete answers the last NeedConfirm. With yes, every occurrence of
// the entry is removed from the history file and the lists are rebuilt.
func (e *Engine) ResolveDelete(yes bool) Result {
	entry, ok := e.pending, e.hasPending
	e.pending, e.hasPending = "", false
	if !ok || !yes {
		return Result{}
	}

	err := e.session.Delete(entry)
	e.session.Search()
	e.cursor.Reset()
	if err != nil {
		e.logger.Warn("delete failed", zap.String("entry", entry), zap.Error(err))
		return Result{Err: err}
	}
	e.logger.Info("entry deleted", zap.String("entry", entry))
	return Result{}
}

// Pending returns the entry awaiting delete confirmation, if any
func (e *Engine) Pending() (string, bool) {
	return e.pending, e.hasPending
}

// Reload rereads the stores after an outside change and reapplies the query.
// The cursor is kept when the number of visible entries did not change.
func (e *Engine) Reload() error {
	err := e.keepCursor(e.session.Load)
	if err != nil {
		e.logger.Warn("reload failed", zap.Error(err))
		return err
	}
	e.logger.Debug("history reloaded", zap.Int("entries", len(e.session.Entries())))
	return nil
}

// SetQuery replaces the search string, e.g. with an initial query
func (e *Engine) SetQuery(q string) {
	e.session.SetQuery(q)
	e.research()
}

// SetCapacity changes the rows per page, resetting the cursor on change
func (e *Engine) SetCapacity(n int) {
	if e.cursor.SetCapacity(n) {
		e.cursor.Reset()
	}
}

// Selected returns the entry under the cursor
func (e *Engine) Selected() (string, bool) {
	return pager.SelectedEntry(e.cursor, e.session.Entries())
}

// Page returns the entries on the current page
func (e *Engine) Page() []string {
	return pager.CurrentPage(e.cursor, e.session.Entries())
}

// Cursor returns a copy of the cursor position
func (e *Engine) Cursor() pager.Cursor {
	return *e.cursor
}

// Pages returns the number of pages in the active view
func (e *Engine) Pages() int {
	return e.cursor.Pages(len(e.session.Entries()))
}

// Session exposes the session for read-only rendering
func (e *Engine) Session() *history.Session {
	return e.session
}

// research restores the unfiltered lists, filters with the current query and
// moves back to the top.
func (e *Engine) research() {
	e.session.Restore()
	e.session.Search()
	e.cursor.Reset()
}

// keepCursor runs a reloading operation and re-applies the query. The cursor
// is reset only if the visible count changed. Search runs even on error since
// a failed operation may already have reloaded the lists.
func (e *Engine) keepCursor(op func() error) error {
	before := len(e.session.Entries())
	err := op()
	e.session.Search()
	if len(e.session.Entries()) != before {
		e.cursor.Reset()
	}
	return err
}
