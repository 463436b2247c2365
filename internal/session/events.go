package session

// Kind identifies the type of the current session.
type Kind int

const (
	Focus Kind = iota
	ShortBreak
	LongBreak
)

var kindNames = map[Kind]string{
	Focus:      "focus",
	ShortBreak: "short_break",
	LongBreak:  "long_break",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return Focus, false
}

// State is a snapshot of the controller's live state.
type State struct {
	Kind       Kind
	CycleIndex int
	Remaining  int
	Running    bool
}

// EventType defines the type of controller event.
type EventType string

const (
	// EventChanged is sent whenever the remaining time, the running flag or
	// the session kind changes.
	EventChanged EventType = "changed"
	// EventTransitioned is sent when a session ends and the next one is set up.
	EventTransitioned EventType = "transitioned"
)

// Transition describes a session boundary. Elapsed is the number of seconds
// the ended session actually ran; it is less than the configured duration
// only when the session was skipped.
type Transition struct {
	From       Kind
	To         Kind
	CycleIndex int
	Elapsed    int
	Skipped    bool
}

// Event is delivered to observers synchronously from the mutating call.
// Transition is only meaningful for EventTransitioned.
type Event struct {
	Type       EventType
	State      State
	Transition Transition
}

// Observer receives controller events.
type Observer func(Event)
