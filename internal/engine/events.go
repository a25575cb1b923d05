package engine

// EventKind identifies a user action
type EventKind int

const (
	Character EventKind = iota // type Char into the query
	Backspace
	Delete // ask to delete the selected entry
	MoveUp
	MoveDown
	PageNext
	PagePrev
	ToggleCase
	ToggleRegex
	ToggleView
	ToggleFavorite
	Confirm // accept the selected entry
	Quit
)

var eventNames = map[EventKind]string{
	Character:      "character",
	Backspace:      "backspace",
	Delete:         "delete",
	MoveUp:         "move-up",
	MoveDown:       "move-down",
	PageNext:       "page-next",
	PagePrev:       "page-prev",
	ToggleCase:     "toggle-case",
	ToggleRegex:    "toggle-regex",
	ToggleView:     "toggle-view",
	ToggleFavorite: "toggle-favorite",
	Confirm:        "confirm",
	Quit:           "quit",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is a single user action. Char is set for Character; Run is set for
// Confirm when the command should be executed rather than just inserted.
type Event struct {
	Kind EventKind
	Char rune
	Run  bool
}

// Action tells the caller what to do after an event
type Action int

const (
	None        Action = iota
	Exit               // leave without a selection
	Accept             // hand Entry to the shell
	NeedConfirm        // ask whether to delete Entry, then call ResolveDelete
)

// Result is the outcome of handling an event. Err is set when a store
// operation failed; the session stays usable.
type Result struct {
	Action Action
	Entry  string
	Run    bool
	Err    error
}
