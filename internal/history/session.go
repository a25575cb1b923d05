package history

import (
	"errors"
	"fmt"
	"slices"
	"unicode/utf8"
)

// Store is a line-oriented backing store for history or favorites
type Store interface {
	ReadLines() ([]string, error)
	WriteLines(lines []string) error
}

// Options tune session behavior
type Options struct {
	// DeleteFromFavorites also removes deleted entries from the favorites store
	DeleteFromFavorites bool
}

// Session holds the three entry lists, the snapshot they were loaded from, the
// current mode and the search query.
type Session struct {
	history   Store
	favorites Store
	opts      Options

	lists    Lists // live, possibly filtered
	snapshot Lists // taken at load, only replaced by a reload

	mode  Mode
	query string
}

// NewSession creates a session over the given stores. Call Load before use.
func NewSession(history, favorites Store, opts Options) *Session {
	return &Session{
		history:   history,
		favorites: favorites,
		opts:      opts,
		mode:      Mode{View: ViewSorted},
	}
}

// Load reads both stores and rebuilds every list and the snapshot. Mode and
// query are kept.
func (s *Session) Load() error {
	raw, err := s.history.ReadLines()
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}
	favs, err := s.favorites.ReadLines()
	if err != nil {
		return fmt.Errorf("load favorites: %w", err)
	}

	s.lists = Lists{
		Sorted:    Rank(raw),
		Favorites: Unique(favs),
		All:       Unique(raw),
	}
	s.snapshot = s.lists.Clone()
	return nil
}

// Restore resets the live lists to the snapshot taken at load
func (s *Session) Restore() {
	s.lists = s.snapshot.Clone()
}

// Entries returns the list for the active view
func (s *Session) Entries() []string {
	return s.lists.Get(s.mode.View)
}

// List returns the live list for v
func (s *Session) List(v View) []string {
	return s.lists.Get(v)
}

// Matcher compiles the current query under the current mode. It is nil when
// the query is an invalid regex.
func (s *Session) Matcher() *Matcher {
	return Compile(s.query, s.mode.Regex, s.mode.CaseSensitive)
}

// Search filters the active list with the current query. Filtering only ever
// narrows, so callers must Restore first whenever the query got shorter or
// the mode changed.
func (s *Session) Search() {
	m := s.Matcher()
	if m == nil {
		return
	}
	v := s.mode.View
	s.lists.set(v, m.Apply(s.lists.Get(v)))
}

// IsFavorite reports whether entry is a saved favorite, regardless of filtering
func (s *Session) IsFavorite(entry string) bool {
	return slices.Contains(s.snapshot.Favorites, entry)
}

// ToggleFavorite adds entry to the favorites, or removes every copy of it if
// already present, persists the result and reloads. The live lists come back
// unfiltered; callers re-run Search.
func (s *Session) ToggleFavorite(entry string) error {
	favs := slices.Clone(s.snapshot.Favorites)
	if slices.Contains(favs, entry) {
		favs = removeAll(favs, entry)
	} else {
		favs = append(favs, entry)
	}

	if err := s.favorites.WriteLines(favs); err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}
	return s.Load()
}

// Delete removes every exact occurrence of entry from the history store (and
// the favorites store when configured), then reloads so the ranking is rebuilt.
// Once the history store is written the lists are reloaded even if saving the
// favorites fails. The caller must have obtained confirmation from the user.
func (s *Session) Delete(entry string) error {
	raw, err := s.history.ReadLines()
	if err != nil {
		return fmt.Errorf("read history: %w", err)
	}
	if err := s.history.WriteLines(removeAll(raw, entry)); err != nil {
		return fmt.Errorf("save history: %w", err)
	}

	var favErr error
	if s.opts.DeleteFromFavorites && slices.Contains(s.snapshot.Favorites, entry) {
		favs := removeAll(slices.Clone(s.snapshot.Favorites), entry)
		if err := s.favorites.WriteLines(favs); err != nil {
			favErr = fmt.Errorf("save favorites: %w", err)
		}
	}

	if err := s.Load(); err != nil {
		return errors.Join(favErr, err)
	}
	return favErr
}

// Mode returns the current toggles
func (s *Session) Mode() Mode {
	return s.mode
}

// SetMode replaces the current toggles
func (s *Session) SetMode(m Mode) {
	s.mode = m
}

// ToggleCase flips case sensitivity
func (s *Session) ToggleCase() {
	s.mode = s.mode.ToggleCase()
}

// ToggleRegex flips between literal and regex matching
func (s *Session) ToggleRegex() {
	s.mode = s.mode.ToggleRegex()
}

// ToggleView moves to the next view
func (s *Session) ToggleView() {
	s.mode = s.mode.ToggleView()
}

// Query returns the search string
func (s *Session) Query() string {
	return s.query
}

// SetQuery replaces the search string
func (s *Session) SetQuery(q string) {
	s.query = q
}

// AppendQuery adds r to the end of the search string
func (s *Session) AppendQuery(r rune) {
	s.query += string(r)
}

// TrimQuery removes the last rune of the search string. It returns false if
// the query was already empty.
func (s *Session) TrimQuery() bool {
	if s.query == "" {
		return false
	}
	_, size := utf8.DecodeLastRuneInString(s.query)
	s.query = s.query[:len(s.query)-size]
	return true
}

// removeAll returns entries without any element equal to target
func removeAll(entries []string, target string) []string {
	return slices.DeleteFunc(entries, func(e string) bool { return e == target })
}
