package todo

// EventType names a ToDo lifecycle event.
type EventType string

const (
	EventCreated   EventType = "ToDoCreated"
	EventUpdated   EventType = "ToDoUpdated"
	EventCompleted EventType = "ToDoCompleted"
)

// EventVersion is the schema version stamped on every published event.
const EventVersion = "v1"

// Event records that a ToDo changed. Type is carried in the envelope
// metadata, not in the payload.
type Event struct {
	Type   EventType `json:"-"`
	ToDoID string    `json:"to_do_id"`
	UserID string    `json:"user_id"`
}

// NewCreated returns the event emitted after td is first stored.
func NewCreated(td ToDo) Event { return newEvent(EventCreated, td) }

// NewUpdated returns the event emitted after td is changed and stored.
func NewUpdated(td ToDo) Event { return newEvent(EventUpdated, td) }

// NewCompleted returns the event emitted after td is marked complete.
func NewCompleted(td ToDo) Event { return newEvent(EventCompleted, td) }

func newEvent(t EventType, td ToDo) Event {
	return Event{
		Type:   t,
		ToDoID: td.ID().String(),
		UserID: td.Owner().String(),
	}
}
