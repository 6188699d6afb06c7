package ports

import "context"

// ToDoService defines the service port for ToDo use cases.
// Implemented by the application layer; called by inbound adapters.
// Every operation is scoped to a single owner.
type ToDoService interface {
	// CreateToDo validates and stores a new ToDo, then announces it.
	// Returns domain.ErrValidation if the title or owner is invalid; both
	// problems are reported in the same error.
	CreateToDo(ctx context.Context, owner string, cmd CreateToDoCommand) (*ToDoItem, error)

	// UpdateToDo applies cmd to an existing ToDo. Nothing is written or
	// published when the update leaves the ToDo unchanged.
	// Returns a *domain.ServiceError wrapping domain.ErrNotFound when the
	// ToDo does not exist, and domain.ErrValidation for an invalid title.
	UpdateToDo(ctx context.Context, owner, id string, cmd UpdateToDoCommand) (*ToDoItem, error)

	// ListToDos returns all ToDos for owner.
	ListToDos(ctx context.Context, owner string) ([]ToDoItem, error)

	// GetToDo returns a single ToDo.
	// Returns domain.ErrNotFound if it does not exist.
	GetToDo(ctx context.Context, owner, id string) (*ToDoItem, error)
}

// CreateToDoCommand carries the input for creating a ToDo. DueDate is an
// RFC3339 timestamp; an unparseable value is dropped rather than rejected.
type CreateToDoCommand struct {
	Title       string  `json:"title" yaml:"title"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	DueDate     *string `json:"due_date,omitempty" yaml:"due_date,omitempty"`
}

// UpdateToDoCommand carries the input for updating a ToDo. Title is always
// applied (and ignored once the ToDo is complete); nil optional fields leave
// the stored value alone.
type UpdateToDoCommand struct {
	Title         string  `json:"title" yaml:"title"`
	SetAsComplete bool    `json:"set_as_complete" yaml:"set_as_complete"`
	Description   *string `json:"description,omitempty" yaml:"description,omitempty"`
	DueDate       *string `json:"due_date,omitempty" yaml:"due_date,omitempty"`
}

// ToDoItem is the flat view of a ToDo handed to callers. Optional values are
// empty strings when absent.
type ToDoItem struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	IsComplete  bool   `json:"is_complete" yaml:"is_complete"`
	CompletedOn string `json:"completed_on" yaml:"completed_on"`
	Description string `json:"description" yaml:"description"`
	DueDate     string `json:"due_date" yaml:"due_date"`
}
