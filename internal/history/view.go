package history

import "slices"

// View selects which entry list is active
type View int

const (
	ViewSorted    View = iota // Ranked by frequency, then recency
	ViewFavorites             // User favorites in insertion order
	ViewAll                   // Unique history in first-seen order
)

// String returns the label shown in the status line
func (v View) String() string {
	switch v {
	case ViewSorted:
		return "sorted"
	case ViewFavorites:
		return "favorites"
	case ViewAll:
		return "all"
	default:
		return "unknown"
	}
}

// Next returns the view that follows v in the Sorted -> Favorites -> All cycle
func (v View) Next() View {
	switch v {
	case ViewSorted:
		return ViewFavorites
	case ViewFavorites:
		return ViewAll
	default:
		return ViewSorted
	}
}

// Mode is the set of toggles that drive filtering. It is a value type: every
// toggle returns a new Mode instead of mutating the receiver.
type Mode struct {
	View          View
	Regex         bool
	CaseSensitive bool
}

// ToggleView returns m with the next view selected
func (m Mode) ToggleView() Mode {
	m.View = m.View.Next()
	return m
}

// ToggleRegex returns m with regex matching flipped
func (m Mode) ToggleRegex() Mode {
	m.Regex = !m.Regex
	return m
}

// ToggleCase returns m with case sensitivity flipped
func (m Mode) ToggleCase() Mode {
	m.CaseSensitive = !m.CaseSensitive
	return m
}

// Lists holds one ordered entry list per view
type Lists struct {
	Sorted    []string
	Favorites []string
	All       []string
}

// Get returns the list for v
func (l *Lists) Get(v View) []string {
	switch v {
	case ViewFavorites:
		return l.Favorites
	case ViewAll:
		return l.All
	default:
		return l.Sorted
	}
}

// set replaces the list for v
func (l *Lists) set(v View, entries []string) {
	switch v {
	case ViewFavorites:
		l.Favorites = entries
	case ViewAll:
		l.All = entries
	default:
		l.Sorted = entries
	}
}

// Clone returns a deep copy; mutating the copy never affects l
func (l Lists) Clone() Lists {
	return Lists{
		Sorted:    slices.Clone(l.Sorted),
		Favorites: slices.Clone(l.Favorites),
		All:       slices.Clone(l.All),
	}
}
