package todo

// Status is the persisted lifecycle state of a ToDo.
type Status string

const (
	StatusIncomplete Status = "INCOMPLETE"
	StatusComplete   Status = "COMPLETE"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusIncomplete, StatusComplete:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
