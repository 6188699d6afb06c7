// Package sqlstore implements the ToDo repository on a SQL database. SQLite,
// PostgreSQL and MySQL are supported through sqlx with squirrel-built
// statements. Every call runs behind a circuit breaker so a failing database
// is reported as unavailable instead of being hammered.
//
// Construction from configuration:
//
//	store, err := sqlstore.Open(ctx, cfg.Storage, logger)
//	defer store.Close()
//
// Rows are rehydrated through todo.Parse, so a record that no longer passes
// validation surfaces as a repository error rather than a half-built ToDo.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/go-sql-driver/mysql" // registers the "mysql" driver
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // registers the "postgres" driver
	"github.com/sony/gobreaker/v2"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/jsamuelsen11/todo-lifecycle/internal/domain"
	"github.com/jsamuelsen11/todo-lifecycle/internal/domain/todo"
	"github.com/jsamuelsen11/todo-lifecycle/internal/platform/config"
	"github.com/jsamuelsen11/todo-lifecycle/internal/ports"
)

// Name is the health check identifier for the store.
const Name = "todo-store"

const table = "todos"

var (
	keyColumns  = []string{"owner_id", "id"}
	dataColumns = []string{"title", "status", "description", "due_date", "completed_on"}
	allColumns  = append(append([]string{}, keyColumns...), dataColumns...)
)

// Compile-time interface checks.
var (
	_ ports.ToDoRepository = (*Store)(nil)
	_ ports.HealthChecker  = (*Store)(nil)
)

// row is the database shape of a ToDo. Timestamps are stored as RFC3339 text
// so every dialect round-trips them identically.
type row struct {
	OwnerID     string         `db:"owner_id"`
	ID          string         `db:"id"`
	Title       string         `db:"title"`
	Status      string         `db:"status"`
	Description sql.NullString `db:"description"`
	DueDate     sql.NullString `db:"due_date"`
	CompletedOn sql.NullString `db:"completed_on"`
}

// Store is a SQL-backed [ports.ToDoRepository].
type Store struct {
	db      *sqlx.DB
	dialect Dialect
	builder sq.StatementBuilderType
	breaker *gobreaker.CircuitBreaker[struct{}]
	logger  *slog.Logger
}

// Open connects to the database described by cfg, verifies the connection
// and applies the schema when cfg.AutoMigrate is set.
func Open(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (*Store, error) {
	dialect, err := ParseDialect(cfg.Driver)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	logger.DebugContext(ctx, "opening todo store",
		slog.String("driver", cfg.Driver),
		slog.String("dsn", cfg.DSN),
	)

	db, err := sqlx.Open(string(dialect), cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", dialect, err)
	}
	if dialect == SQLite {
		// A single connection keeps ":memory:" databases alive and
		// serializes writers.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to %s database: %w", dialect, err)
	}

	s := New(db, dialect, cfg.CircuitBreaker, logger)
	if cfg.AutoMigrate {
		if err := s.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return s, nil
}

// New wraps an open database handle. Callers own schema setup.
func New(db *sqlx.DB, dialect Dialect, cb config.CircuitBreakerConfig, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	breaker := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        Name,
		MaxRequests: toUint32(cb.HalfOpenLimit),
		Timeout:     cb.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cb.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, domain.ErrNotFound)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Store{
		db:      db,
		dialect: dialect,
		builder: sq.StatementBuilder.PlaceholderFormat(dialect.placeholder()),
		breaker: breaker,
		logger:  logger,
	}
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// List returns the owner's ToDos ordered by id.
func (s *Store) List(ctx context.Context, owner string) ([]todo.ToDo, error) {
	query, args, err := s.builder.
		Select(allColumns...).
		From(table).
		Where(sq.Eq{"owner_id": owner}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, &domain.RepositoryError{Op: "list", Err: err}
	}

	var rows []row
	err = s.execute(func() error {
		return s.db.SelectContext(ctx, &rows, query, args...)
	})
	if err != nil {
		return nil, s.fail(ctx, "list", err)
	}

	todos := make([]todo.ToDo, 0, len(rows))
	for _, r := range rows {
		td, err := todo.Parse(r.parseInput())
		if err != nil {
			return nil, s.fail(ctx, "list", err)
		}
		todos = append(todos, td)
	}
	return todos, nil
}

// Create inserts td or overwrites the stored row with the same owner and id.
func (s *Store) Create(ctx context.Context, td todo.ToDo) error {
	r := toRow(td)
	query, args, err := s.builder.
		Insert(table).
		Columns(allColumns...).
		Values(r.OwnerID, r.ID, r.Title, r.Status, r.Description, r.DueDate, r.CompletedOn).
		Suffix(s.dialect.upsertSuffix(keyColumns, dataColumns)).
		ToSql()
	if err != nil {
		return &domain.RepositoryError{Op: "create", Err: err}
	}

	err = s.execute(func() error {
		_, err := s.db.ExecContext(ctx, query, args...)
		return err
	})
	if err != nil {
		return s.fail(ctx, "create", err)
	}
	return nil
}

// Get returns one ToDo, or a RepositoryError wrapping domain.ErrNotFound.
func (s *Store) Get(ctx context.Context, owner, id string) (todo.ToDo, error) {
	query, args, err := s.builder.
		Select(allColumns...).
		From(table).
		Where(sq.Eq{"owner_id": owner}).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, &domain.RepositoryError{Op: "get", Err: err}
	}

	var r row
	err = s.execute(func() error {
		err := s.db.GetContext(ctx, &r, query, args...)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, "get", err)
	}

	td, err := todo.Parse(r.parseInput())
	if err != nil {
		return nil, s.fail(ctx, "get", err)
	}
	return td, nil
}

// Name returns the health check identifier.
func (s *Store) Name() string { return Name }

// HealthCheck reports an open breaker without touching the database and
// otherwise pings it.
func (s *Store) HealthCheck(ctx context.Context) error {
	switch state := s.breaker.State(); state {
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", Name)
	case gobreaker.StateHalfOpen, gobreaker.StateClosed:
		// Probe below.
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", Name, state)
	}

	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%s: ping failed: %w", Name, err)
	}
	return nil
}

// execute runs fn through the circuit breaker.
func (s *Store) execute(fn func() error) error {
	_, err := s.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

// fail wraps err for the caller. Breaker rejections become
// domain.ErrUnavailable; everything except a missing row is logged.
func (s *Store) fail(ctx context.Context, op string, err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		err = fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		s.logger.ErrorContext(ctx, "todo store operation failed",
			slog.String("operation", op),
			slog.String("dialect", string(s.dialect)),
			slog.Any("error", err),
		)
	}
	return &domain.RepositoryError{Op: op, Err: err}
}

func toRow(td todo.ToDo) row {
	in := todo.Snapshot(td)
	return row{
		OwnerID:     in.Owner,
		ID:          *in.ID,
		Title:       in.Title,
		Status:      *in.Status,
		Description: nullString(in.Description),
		DueDate:     nullTime(in.DueDate),
		CompletedOn: nullTime(in.CompletedOn),
	}
}

func (r row) parseInput() todo.ParseInput {
	in := todo.ParseInput{
		Title:       r.Title,
		Owner:       r.OwnerID,
		Status:      &r.Status,
		ID:          &r.ID,
		DueDate:     parseTime(r.DueDate),
		CompletedOn: parseTime(r.CompletedOn),
	}
	if r.Description.Valid {
		in.Description = &r.Description.String
	}
	return in
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(time.RFC3339Nano), Valid: true}
}

// parseTime returns nil for NULL or unparseable values.
func parseTime(ns sql.NullString) *time.Time {
	if !ns.Valid {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, ns.String)
	if err != nil {
		return nil
	}
	return &t
}

// toUint32 converts a non-negative int to uint32, clamping at the uint32
// maximum. Negative values are treated as zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
