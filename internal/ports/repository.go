package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-lifecycle/internal/domain/todo"
)

// ToDoRepository defines the persistence port for ToDo entities.
// Implemented by the memory and sqlstore adapters; called by the application layer.
// Failures are returned as *domain.RepositoryError.
type ToDoRepository interface {
	// List returns every ToDo owned by owner. An owner with no ToDos yields
	// an empty slice, not an error.
	List(ctx context.Context, owner string) ([]todo.ToDo, error)

	// Create stores td, replacing any existing ToDo with the same owner and id.
	Create(ctx context.Context, td todo.ToDo) error

	// Get returns a single ToDo.
	// Returns an error wrapping domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, owner, id string) (todo.ToDo, error)
}

// MessagePublisher defines the port for announcing ToDo lifecycle events.
type MessagePublisher interface {
	// Publish delivers a single event. Delivery failures are returned to the
	// caller; no retry is attempted.
	Publish(ctx context.Context, event todo.Event) error
}
