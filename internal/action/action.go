package action

// Action is one of the closed set of operations an invocation performs.
type Action int

const (
	Help Action = iota
	Save
	Show
	Delete
	List
	RemoveDatabase
	Pick
)

var actionNames = map[Action]string{
	Help:           "help",
	Save:           "save",
	Show:           "show",
	Delete:         "delete",
	List:           "list",
	RemoveDatabase: "remove-database",
	Pick:           "pick",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// NeedsName reports whether the action operates on a single named bookmark.
func (a Action) NeedsName() bool {
	return a == Save || a == Show || a == Delete
}

// Options is the parsed flag bag handed over by the CLI layer.
// Nil value flags were not supplied.
type Options struct {
	Help           bool
	List           bool
	Pick           bool
	RemoveDatabase *string
	Save           *string
	Show           *string
	Delete         *string
}

// Selection is the resolved action plus the bookmark name it applies to.
type Selection struct {
	Action Action
	Name   string
	// Fallback is set when no action flag was given and Help was chosen
	// in its place.
	Fallback bool
}

// Resolve picks exactly one action from opts.
//
// Help wins over everything, then List, then RemoveDatabase. Among the
// named actions the precedence is save > show > delete. Pick comes last.
// Without any action flag the result is Help with Fallback set.
func Resolve(opts Options) Selection {
	switch {
	case opts.Help:
		return Selection{Action: Help}
	case opts.List:
		return Selection{Action: List}
	case opts.RemoveDatabase != nil:
		return Selection{Action: RemoveDatabase}
	case opts.Save != nil:
		return Selection{Action: Save, Name: *opts.Save}
	case opts.Show != nil:
		return Selection{Action: Show, Name: *opts.Show}
	case opts.Delete != nil:
		return Selection{Action: Delete, Name: *opts.Delete}
	case opts.Pick:
		return Selection{Action: Pick}
	default:
		return Selection{Action: Help, Fallback: true}
	}
}
