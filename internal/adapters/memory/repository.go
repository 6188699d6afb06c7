// Package memory provides an in-process ToDoRepository. It backs the
// "memory" storage driver and keeps nothing across runs.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/jsamuelsen11/todo-lifecycle/internal/domain"
	"github.com/jsamuelsen11/todo-lifecycle/internal/domain/todo"
	"github.com/jsamuelsen11/todo-lifecycle/internal/ports"
)

// Name is the health check identifier for the in-memory store.
const Name = "todo-store"

// Compile-time interface checks.
var (
	_ ports.ToDoRepository = (*Repository)(nil)
	_ ports.HealthChecker  = (*Repository)(nil)
)

// Repository stores ToDo snapshots in a map partitioned by owner. Reads
// rehydrate through todo.Parse, so returned ToDos never carry pending
// changes. Safe for concurrent use.
type Repository struct {
	mu     sync.RWMutex
	owners map[string]map[string]todo.ParseInput
}

// New creates an empty Repository.
func New() *Repository {
	return &Repository{owners: make(map[string]map[string]todo.ParseInput)}
}

// List returns the owner's ToDos ordered by id.
func (r *Repository) List(ctx context.Context, owner string) ([]todo.ToDo, error) {
	if err := ctx.Err(); err != nil {
		return nil, &domain.RepositoryError{Op: "list", Err: err}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.owners[owner]
	out := make([]todo.ToDo, 0, len(items))
	for _, in := range items {
		td, err := todo.Parse(in)
		if err != nil {
			return nil, &domain.RepositoryError{Op: "list", Err: err}
		}
		out = append(out, td)
	}
	slices.SortFunc(out, func(a, b todo.ToDo) int {
		return strings.Compare(a.ID().String(), b.ID().String())
	})
	return out, nil
}

// Create stores td, replacing any ToDo with the same owner and id.
func (r *Repository) Create(ctx context.Context, td todo.ToDo) error {
	if err := ctx.Err(); err != nil {
		return &domain.RepositoryError{Op: "create", Err: err}
	}

	owner := td.Owner().String()

	r.mu.Lock()
	defer r.mu.Unlock()

	items, ok := r.owners[owner]
	if !ok {
		items = make(map[string]todo.ParseInput)
		r.owners[owner] = items
	}
	items[td.ID().String()] = todo.Snapshot(td)
	return nil
}

// Get returns one ToDo, or a RepositoryError wrapping domain.ErrNotFound.
func (r *Repository) Get(ctx context.Context, owner, id string) (todo.ToDo, error) {
	if err := ctx.Err(); err != nil {
		return nil, &domain.RepositoryError{Op: "get", Err: err}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	in, ok := r.owners[owner][id]
	if !ok {
		return nil, &domain.RepositoryError{Op: "get", Err: domain.ErrNotFound}
	}
	td, err := todo.Parse(in)
	if err != nil {
		return nil, &domain.RepositoryError{Op: "get", Err: err}
	}
	return td, nil
}

// Name returns the health check identifier.
func (r *Repository) Name() string { return Name }

// HealthCheck always succeeds unless ctx is done.
func (r *Repository) HealthCheck(ctx context.Context) error {
	return ctx.Err()
}
