// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/todo-lifecycle/internal/domain"
	"github.com/jsamuelsen11/todo-lifecycle/internal/domain/todo"
	"github.com/jsamuelsen11/todo-lifecycle/internal/ports"
)

// Compile-time check that ToDoService implements ports.ToDoService.
var _ ports.ToDoService = (*ToDoService)(nil)

// ToDoService implements ports.ToDoService. It validates through the todo
// domain package, persists through the repository port and announces changes
// through the optional publisher port. It performs no retries: repository
// and publisher failures are returned to the caller.
type ToDoService struct {
	repo      ports.ToDoRepository
	publisher ports.MessagePublisher
	logger    *slog.Logger
}

// NewToDoService creates a ToDoService. A nil publisher disables event
// publishing; a nil logger discards log output.
func NewToDoService(repo ports.ToDoRepository, publisher ports.MessagePublisher, logger *slog.Logger) *ToDoService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ToDoService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateToDo validates title and owner together, stores a new incomplete
// ToDo and publishes a created event. An unparseable due date is dropped.
func (s *ToDoService) CreateToDo(ctx context.Context, owner string, cmd ports.CreateToDoCommand) (*ports.ToDoItem, error) {
	s.logger.InfoContext(ctx, "creating todo", slog.String("owner_id", owner))

	td, err := todo.New(cmd.Title, owner, cmd.Description, parseDueDate(cmd.DueDate))
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, td); err != nil {
		s.logger.ErrorContext(ctx, "failed to store todo",
			slog.String("operation", "CreateToDo"),
			slog.String("owner_id", owner),
			slog.String("todo_id", td.ID().String()),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("storing todo: %w", err)
	}

	if err := s.publish(ctx, "CreateToDo", todo.NewCreated(td)); err != nil {
		return nil, err
	}

	item := toItem(td)
	return &item, nil
}

// UpdateToDo loads the ToDo, optionally completes it, then applies the
// title, description and due date. The write and the event are skipped when
// the result carries no changes. Completing publishes a completed event;
// any other change publishes an updated event.
func (s *ToDoService) UpdateToDo(ctx context.Context, owner, id string, cmd ports.UpdateToDoCommand) (*ports.ToDoItem, error) {
	s.logger.InfoContext(ctx, "updating todo",
		slog.String("owner_id", owner),
		slog.String("todo_id", id),
		slog.Bool("set_as_complete", cmd.SetAsComplete),
	)

	td, err := s.repo.Get(ctx, owner, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch todo for update",
			slog.String("operation", "UpdateToDo"),
			slog.String("owner_id", owner),
			slog.String("todo_id", id),
			slog.Any("error", err),
		)
		return nil, &domain.ServiceError{Message: "record not found", Err: err}
	}

	if cmd.SetAsComplete {
		td = td.SetCompleted()
	}

	td, err = td.UpdateTitle(cmd.Title)
	if err != nil {
		return nil, err
	}

	td = td.UpdateDescription(cmd.Description).UpdateDueDate(cmd.DueDate)

	if !td.HasChanges() {
		s.logger.DebugContext(ctx, "todo unchanged, skipping write",
			slog.String("owner_id", owner),
			slog.String("todo_id", id),
		)
		item := toItem(td)
		return &item, nil
	}

	if err := s.repo.Create(ctx, td); err != nil {
		s.logger.ErrorContext(ctx, "failed to store todo",
			slog.String("operation", "UpdateToDo"),
			slog.String("owner_id", owner),
			slog.String("todo_id", id),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("storing todo: %w", err)
	}

	event := todo.NewUpdated(td)
	if cmd.SetAsComplete {
		event = todo.NewCompleted(td)
	}
	if err := s.publish(ctx, "UpdateToDo", event); err != nil {
		return nil, err
	}

	item := toItem(td)
	return &item, nil
}

// ListToDos returns every ToDo owned by owner.
func (s *ToDoService) ListToDos(ctx context.Context, owner string) ([]ports.ToDoItem, error) {
	s.logger.InfoContext(ctx, "listing todos", slog.String("owner_id", owner))

	todos, err := s.repo.List(ctx, owner)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list todos",
			slog.String("operation", "ListToDos"),
			slog.String("owner_id", owner),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing todos: %w", err)
	}

	items := make([]ports.ToDoItem, 0, len(todos))
	for _, td := range todos {
		items = append(items, toItem(td))
	}
	return items, nil
}

// GetToDo returns a single ToDo.
func (s *ToDoService) GetToDo(ctx context.Context, owner, id string) (*ports.ToDoItem, error) {
	s.logger.InfoContext(ctx, "fetching todo",
		slog.String("owner_id", owner),
		slog.String("todo_id", id),
	)

	td, err := s.repo.Get(ctx, owner, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch todo",
			slog.String("operation", "GetToDo"),
			slog.String("owner_id", owner),
			slog.String("todo_id", id),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("fetching todo: %w", err)
	}

	item := toItem(td)
	return &item, nil
}

// publish sends event when a publisher is configured.
func (s *ToDoService) publish(ctx context.Context, operation string, event todo.Event) error {
	if s.publisher == nil {
		return nil
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish event",
			slog.String("operation", operation),
			slog.String("event_type", string(event.Type)),
			slog.String("todo_id", event.ToDoID),
			slog.Any("error", err),
		)
		return fmt.Errorf("publishing %s: %w", event.Type, err)
	}
	return nil
}

// parseDueDate parses an RFC3339 due date, returning nil when absent or
// unparseable.
func parseDueDate(raw *string) *time.Time {
	if raw == nil {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil
	}
	return &parsed
}

// toItem converts a domain ToDo to the DTO handed to callers.
func toItem(td todo.ToDo) ports.ToDoItem {
	return ports.ToDoItem{
		ID:          td.ID().String(),
		Title:       td.Title().String(),
		IsComplete:  td.IsComplete(),
		CompletedOn: td.CompletedOn(),
		Description: td.Description(),
		DueDate:     td.DueDate(),
	}
}
