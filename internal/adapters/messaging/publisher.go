// Package messaging provides MessagePublisher adapters. LogPublisher writes
// each ToDo lifecycle event as a structured log record wrapped in the event
// envelope consumers expect.
package messaging

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todo-lifecycle/internal/domain/todo"
	"github.com/jsamuelsen11/todo-lifecycle/internal/ports"
)

// Name is the health check identifier for the publisher.
const Name = "publisher"

// Compile-time interface checks.
var (
	_ ports.MessagePublisher = (*LogPublisher)(nil)
	_ ports.HealthChecker    = (*LogPublisher)(nil)
)

// Metadata describes an event independently of its payload.
type Metadata struct {
	EventID      string `json:"event_id"`
	EventDate    int64  `json:"event_date"`
	EventType    string `json:"event_type"`
	EventVersion string `json:"event_version"`
}

// Envelope is the published shape of an event.
type Envelope struct {
	Metadata Metadata   `json:"metadata"`
	Data     todo.Event `json:"data"`
}

// NewEnvelope wraps event with a fresh event id and the given timestamp.
func NewEnvelope(event todo.Event, at time.Time) Envelope {
	return Envelope{
		Metadata: Metadata{
			EventID:      uuid.NewString(),
			EventDate:    at.Unix(),
			EventType:    string(event.Type),
			EventVersion: todo.EventVersion,
		},
		Data: event,
	}
}

// LogPublisher publishes events to a slog.Logger.
type LogPublisher struct {
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a LogPublisher.
type Option func(*LogPublisher)

// WithClock overrides the event timestamp source.
func WithClock(now func() time.Time) Option {
	return func(p *LogPublisher) {
		p.now = now
	}
}

// NewLogPublisher creates a LogPublisher writing to logger.
func NewLogPublisher(logger *slog.Logger, opts ...Option) *LogPublisher {
	p := &LogPublisher{logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish logs the event envelope at info level. It fails only when ctx is done.
func (p *LogPublisher) Publish(ctx context.Context, event todo.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := NewEnvelope(event, p.now())
	p.logger.InfoContext(ctx, "todo event published",
		slog.String("event_type", env.Metadata.EventType),
		slog.String("event_id", env.Metadata.EventID),
		slog.Any("envelope", env),
	)
	return nil
}

// Name returns the health check identifier.
func (p *LogPublisher) Name() string { return Name }

// HealthCheck always succeeds unless ctx is done.
func (p *LogPublisher) HealthCheck(ctx context.Context) error {
	return ctx.Err()
}
