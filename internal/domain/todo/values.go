package todo

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/todo-lifecycle/internal/domain"
)

// Validation messages surfaced to callers.
const (
	MsgLength      = "Must be between 1 and 50 chars"
	MsgOwnerLength = "Owner Id must have a length"
)

// maxLength bounds titles and ids, counted in characters.
const maxLength = 50

var (
	validate  = validator.New()
	lengthTag = "required,max=" + strconv.Itoa(maxLength)
)

// boundedLength reports whether s holds between 1 and maxLength characters.
func boundedLength(s string) bool {
	return validate.Var(s, lengthTag) == nil
}

// Title is the validated title of a ToDo.
type Title struct {
	value string
}

// NewTitle validates s and returns a Title. Empty titles and titles longer
// than 50 characters fail with a validation error on the "title" field.
func NewTitle(s string) (Title, error) {
	if !boundedLength(s) {
		return Title{}, domain.NewFieldError("title", MsgLength)
	}
	return Title{value: s}, nil
}

// String implements fmt.Stringer.
func (t Title) String() string { return t.value }

// Equals reports whether both titles hold the same text.
func (t Title) Equals(other Title) bool { return t.value == other.value }

// IsZero reports whether t was never constructed through NewTitle.
func (t Title) IsZero() bool { return t.value == "" }

// OwnerID identifies the user owning a ToDo.
type OwnerID struct {
	value string
}

// NewOwnerID validates s and returns an OwnerID. Only emptiness is checked.
func NewOwnerID(s string) (OwnerID, error) {
	if validate.Var(s, "required") != nil {
		return OwnerID{}, domain.NewFieldError("owner_id", MsgOwnerLength)
	}
	return OwnerID{value: s}, nil
}

// String implements fmt.Stringer.
func (o OwnerID) String() string { return o.value }

// Equals reports whether both owner ids match.
func (o OwnerID) Equals(other OwnerID) bool { return o.value == other.value }

// IsZero reports whether o is the zero OwnerID.
func (o OwnerID) IsZero() bool { return o.value == "" }

// ID identifies a ToDo. Fresh ids are random UUIDs; persisted ids are any
// string of 1 to 50 characters.
type ID struct {
	value string
}

// NewID generates a fresh random id.
func NewID() ID {
	return ID{value: uuid.NewString()}
}

// ParseID validates an id read back from storage or supplied by a caller.
func ParseID(s string) (ID, error) {
	if !boundedLength(s) {
		return ID{}, domain.NewFieldError("id", MsgLength)
	}
	return ID{value: s}, nil
}

// String implements fmt.Stringer.
func (id ID) String() string { return id.value }

// Equals reports whether both ids match.
func (id ID) Equals(other ID) bool { return id.value == other.value }

// IsZero reports whether id is the zero ID.
func (id ID) IsZero() bool { return id.value == "" }
