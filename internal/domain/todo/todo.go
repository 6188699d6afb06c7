// Package todo models the ToDo lifecycle: validated value objects, the two
// entity states (Incomplete and Complete) and the events emitted when a ToDo
// is created, updated or completed.
//
// Every transition returns a new ToDo value; nothing is mutated in place.
// HasChanges on the returned value tells callers whether the transition
// actually altered state, so redundant writes can be skipped.
package todo

import (
	"time"

	"github.com/jsamuelsen11/todo-lifecycle/internal/domain"
)

// MsgCompletedOnRequired is returned when a COMPLETE record has no completion date.
const MsgCompletedOnRequired = "If status is completed a valid completed on date must be passed"

// ToDo is a task owned by a single user. It is always exactly one of
// Incomplete or Complete.
type ToDo interface {
	ID() ID
	Title() Title
	Owner() OwnerID
	Status() Status
	IsComplete() bool

	// Description returns the description, or "" when none is set.
	Description() string
	// DueDate returns the due date as RFC3339, or "" when none is set.
	DueDate() string
	// CompletedOn returns the completion time as RFC3339, or "" while incomplete.
	CompletedOn() string
	// HasChanges reports whether the last transition altered the ToDo.
	HasChanges() bool

	// UpdateTitle validates title and applies it while incomplete. On a
	// complete ToDo the title is kept and HasChanges is left as it was.
	UpdateTitle(title string) (ToDo, error)
	// UpdateDescription overwrites the description in either state. Nil is a no-op.
	UpdateDescription(description *string) ToDo
	// UpdateDueDate parses dueDate as RFC3339 and overwrites the due date in
	// either state. Nil and unparseable values are no-ops.
	UpdateDueDate(dueDate *string) ToDo
	// SetCompleted moves an incomplete ToDo to complete, stamping the
	// completion time. Completing twice changes nothing.
	SetCompleted() ToDo

	sealed()
}

// Compile-time checks that both states implement ToDo.
var (
	_ ToDo = Incomplete{}
	_ ToDo = Complete{}
)

// fields is the state shared by both variants.
type fields struct {
	id          ID
	title       Title
	owner       OwnerID
	description *string
	dueDate     *time.Time
	hasChanges  bool
}

func (f fields) ID() ID { return f.id }
func (f fields) Title() Title { return f.title }
func (f fields) Owner() OwnerID { return f.owner }
func (f fields) HasChanges() bool { return f.hasChanges }
func (fields) sealed() {}
func (f fields) DueDate() string { return formatTime(f.dueDate) }
func (f fields) Description() string {
	if f.description == nil {
		return ""
	}
	return *f.description
}

// withDescription returns a copy carrying description, or ok=false for nil.
func (f fields) withDescription(description *string) (fields, bool) {
	if description == nil {
		return f, false
	}
	d := *description
	f.description = &d
	f.hasChanges = true
	return f, true
}

// withDueDate returns a copy carrying the parsed due date, or ok=false when
// dueDate is nil or not RFC3339.
func (f fields) withDueDate(dueDate *string) (fields, bool) {
	if dueDate == nil {
		return f, false
	}
	parsed, err := time.Parse(time.RFC3339, *dueDate)
	if err != nil {
		return f, false
	}
	f.dueDate = &parsed
	f.hasChanges = true
	return f, true
}

// Incomplete is a ToDo that has not been completed yet.
type Incomplete struct {
	fields
}

func (Incomplete) Status() Status { return StatusIncomplete }
func (Incomplete) IsComplete() bool { return false }
func (Incomplete) CompletedOn() string { return "" }

func (t Incomplete) UpdateTitle(title string) (ToDo, error) {
	next, err := NewTitle(title)
	if err != nil {
		return nil, err
	}
	t.title = next
	t.hasChanges = true
	return t, nil
}

func (t Incomplete) UpdateDescription(description *string) ToDo {
	if f, ok := t.withDescription(description); ok {
		t.fields = f
	}
	return t
}

func (t Incomplete) UpdateDueDate(dueDate *string) ToDo {
	if f, ok := t.withDueDate(dueDate); ok {
		t.fields = f
	}
	return t
}

func (t Incomplete) SetCompleted() ToDo {
	f := t.fields
	f.hasChanges = true
	return Complete{fields: f, completedOn: time.Now().UTC()}
}

// Complete is a ToDo that has been completed. Its title is frozen.
type Complete struct {
	fields
	completedOn time.Time
}

func (Complete) Status() Status { return StatusComplete }
func (Complete) IsComplete() bool { return true }
func (t Complete) CompletedOn() string { return formatTime(&t.completedOn) }

// CompletedAt returns the completion time.
func (t Complete) CompletedAt() time.Time { return t.completedOn }

func (t Complete) UpdateTitle(title string) (ToDo, error) {
	if _, err := NewTitle(title); err != nil {
		return nil, err
	}
	return t, nil
}

func (t Complete) UpdateDescription(description *string) ToDo {
	if f, ok := t.withDescription(description); ok {
		t.fields = f
	}
	return t
}

func (t Complete) UpdateDueDate(dueDate *string) ToDo {
	if f, ok := t.withDueDate(dueDate); ok {
		t.fields = f
	}
	return t
}

func (t Complete) SetCompleted() ToDo {
	t.hasChanges = false
	return t
}

// New validates title and owner and returns a fresh Incomplete ToDo with a
// generated id. Title and owner failures are reported together.
func New(title, owner string, description *string, dueDate *time.Time) (ToDo, error) {
	t, titleErr := NewTitle(title)
	o, ownerErr := NewOwnerID(owner)
	if err := domain.JoinValidation(titleErr, ownerErr); err != nil {
		return nil, err
	}

	return Incomplete{fields: fields{
		id:          NewID(),
		title:       t,
		owner:       o,
		description: copyString(description),
		dueDate:     copyTime(dueDate),
	}}, nil
}

// ParseInput carries a ToDo read back from storage. Nil pointers mean the
// attribute was absent.
type ParseInput struct {
	Title       string
	Owner       string
	Status      *string
	ID          *string
	Description *string
	DueDate     *time.Time
	CompletedOn *time.Time
}

// Parse reconstitutes a ToDo. A COMPLETE status selects Complete and requires
// CompletedOn; any other or missing status yields Incomplete. A missing id is
// replaced with a freshly generated one. Every validation failure is reported
// together.
func Parse(in ParseInput) (ToDo, error) {
	t, titleErr := NewTitle(in.Title)
	o, ownerErr := NewOwnerID(in.Owner)

	id := NewID()
	var idErr error
	if in.ID != nil {
		id, idErr = ParseID(*in.ID)
	}

	complete := in.Status != nil && Status(*in.Status) == StatusComplete
	var completedErr error
	if complete && in.CompletedOn == nil {
		completedErr = domain.NewFieldError("completed_on", MsgCompletedOnRequired)
	}

	if err := domain.JoinValidation(titleErr, ownerErr, idErr, completedErr); err != nil {
		return nil, err
	}

	f := fields{
		id:          id,
		title:       t,
		owner:       o,
		description: copyString(in.Description),
		dueDate:     copyTime(in.DueDate),
	}
	if complete {
		return Complete{fields: f, completedOn: *in.CompletedOn}, nil
	}
	return Incomplete{fields: f}, nil
}

// Snapshot returns the ParseInput that Parse turns back into td with
// HasChanges cleared. Repositories store and rehydrate ToDos through it.
func Snapshot(td ToDo) ParseInput {
	status := string(td.Status())
	id := td.ID().String()
	in := ParseInput{
		Title:  td.Title().String(),
		Owner:  td.Owner().String(),
		Status: &status,
		ID:     &id,
	}

	var f fields
	switch v := td.(type) {
	case Incomplete:
		f = v.fields
	case Complete:
		f = v.fields
		completedOn := v.completedOn
		in.CompletedOn = &completedOn
	}
	in.Description = copyString(f.description)
	in.DueDate = copyTime(f.dueDate)
	return in
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
