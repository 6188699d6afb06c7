package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-lifecycle/internal/domain"
	"github.com/jsamuelsen11/todo-lifecycle/internal/domain/todo"
	"github.com/jsamuelsen11/todo-lifecycle/internal/platform/config"
)

var testBreaker = config.CircuitBreakerConfig{
	MaxFailures:   2,
	Timeout:       time.Minute,
	HalfOpenLimit: 1,
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

var rowColumns = []string{"owner_id", "id", "title", "status", "description", "due_date", "completed_on"}

func newMockStore(t *testing.T, dialect Dialect) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return New(sqlx.NewDb(db, "sqlmock"), dialect, testBreaker, nil), mock
}

func TestParseDialect(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"sqlite", "postgres", "mysql"} {
		d, err := ParseDialect(name)
		require.NoError(t, err)
		assert.Equal(t, name, string(d))
	}

	_, err := ParseDialect("memory")
	assert.Error(t, err)
}

func TestDialect_UpsertSuffix(t *testing.T) {
	t.Parallel()

	keys := []string{"owner_id", "id"}
	cols := []string{"title", "status"}

	assert.Equal(t,
		"ON CONFLICT (owner_id, id) DO UPDATE SET title = excluded.title, status = excluded.status",
		Postgres.upsertSuffix(keys, cols))
	assert.Equal(t,
		"ON CONFLICT (owner_id, id) DO UPDATE SET title = excluded.title, status = excluded.status",
		SQLite.upsertSuffix(keys, cols))
	assert.Equal(t,
		"ON DUPLICATE KEY UPDATE title = VALUES(title), status = VALUES(status)",
		MySQL.upsertSuffix(keys, cols))
}

func TestSchemaStatements(t *testing.T) {
	t.Parallel()

	for _, d := range []Dialect{SQLite, Postgres, MySQL} {
		stmts, err := schemaStatements(d)
		require.NoError(t, err, d)
		require.Len(t, stmts, 1, d)
		assert.Contains(t, stmts[0], "CREATE TABLE IF NOT EXISTS todos", d)
		assert.Contains(t, stmts[0], "PRIMARY KEY (owner_id, id)", d)
	}
}

func TestStore_List(t *testing.T) {
	t.Parallel()
	store, mock := newMockStore(t, Postgres)

	mock.ExpectQuery(`SELECT owner_id, id, title, status, description, due_date, completed_on FROM todos WHERE owner_id = \$1 ORDER BY id`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(rowColumns).
			AddRow("alice", "a-1", "Buy milk", "INCOMPLETE", "2 litres", "2026-03-01T09:00:00Z", nil).
			AddRow("alice", "b-2", "File taxes", "COMPLETE", nil, nil, "2026-02-12T15:04:05Z"))

	todos, err := store.List(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, todos, 2)

	assert.Equal(t, "a-1", todos[0].ID().String())
	assert.False(t, todos[0].IsComplete())
	assert.Equal(t, "2 litres", todos[0].Description())
	assert.Equal(t, "2026-03-01T09:00:00Z", todos[0].DueDate())

	assert.True(t, todos[1].IsComplete())
	assert.Equal(t, "2026-02-12T15:04:05Z", todos[1].CompletedOn())
	assert.Empty(t, todos[1].Description())

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_List_InvalidRow(t *testing.T) {
	t.Parallel()
	store, mock := newMockStore(t, SQLite)

	mock.ExpectQuery(`SELECT .+ FROM todos WHERE owner_id = \?`).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(rowColumns).
			AddRow("alice", "a-1", "Done", "COMPLETE", nil, nil, nil))

	_, err := store.List(context.Background(), "alice")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	var rerr *domain.RepositoryError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "list", rerr.Op)
}

func TestStore_Get(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		store, mock := newMockStore(t, Postgres)

		mock.ExpectQuery(`SELECT .+ FROM todos WHERE owner_id = \$1 AND id = \$2`).
			WithArgs("alice", "a-1").
			WillReturnRows(sqlmock.NewRows(rowColumns).
				AddRow("alice", "a-1", "Buy milk", "INCOMPLETE", nil, nil, nil))

		td, err := store.Get(context.Background(), "alice", "a-1")
		require.NoError(t, err)
		assert.Equal(t, "Buy milk", td.Title().String())
		assert.Equal(t, "alice", td.Owner().String())
		assert.False(t, td.HasChanges())
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found does not trip the breaker", func(t *testing.T) {
		t.Parallel()
		store, mock := newMockStore(t, Postgres)

		for range testBreaker.MaxFailures + 1 {
			mock.ExpectQuery(`SELECT .+ FROM todos WHERE owner_id = \$1 AND id = \$2`).
				WithArgs("alice", "missing").
				WillReturnError(sql.ErrNoRows)
		}

		for range testBreaker.MaxFailures + 1 {
			_, err := store.Get(context.Background(), "alice", "missing")
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrNotFound)
			assert.NotErrorIs(t, err, domain.ErrUnavailable)
		}

		mock.ExpectPing()
		assert.NoError(t, store.HealthCheck(context.Background()))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStore_Create(t *testing.T) {
	t.Parallel()

	td, err := todo.New("Buy milk", "alice", nil, nil)
	require.NoError(t, err)

	t.Run("postgres upsert", func(t *testing.T) {
		t.Parallel()
		store, mock := newMockStore(t, Postgres)

		mock.ExpectExec(`INSERT INTO todos \(owner_id,id,title,status,description,due_date,completed_on\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6,\$7\) ON CONFLICT \(owner_id, id\) DO UPDATE SET title = excluded.title`).
			WithArgs("alice", td.ID().String(), "Buy milk", "INCOMPLETE", nil, nil, nil).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, store.Create(context.Background(), td))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("mysql upsert", func(t *testing.T) {
		t.Parallel()
		store, mock := newMockStore(t, MySQL)

		completed := td.SetCompleted()
		mock.ExpectExec(`INSERT INTO todos .+ VALUES \(\?,\?,\?,\?,\?,\?,\?\) ON DUPLICATE KEY UPDATE title = VALUES\(title\)`).
			WithArgs("alice", td.ID().String(), "Buy milk", "COMPLETE", nil, nil, completed.CompletedOn()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, store.Create(context.Background(), completed))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStore_BreakerOpensAfterFailures(t *testing.T) {
	t.Parallel()
	store, mock := newMockStore(t, SQLite)

	td, err := todo.New("Buy milk", "alice", nil, nil)
	require.NoError(t, err)

	dbErr := errors.New("disk I/O error")
	for range testBreaker.MaxFailures {
		mock.ExpectExec(`INSERT INTO todos`).WillReturnError(dbErr)
	}

	for range testBreaker.MaxFailures {
		err := store.Create(context.Background(), td)
		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
		assert.NotContains(t, err.Error(), "disk I/O", "repository errors keep backend detail out of the message")
	}

	// The breaker is open now: no statement reaches the database.
	err = store.Create(context.Background(), td)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnavailable)

	_, err = store.List(context.Background(), "alice")
	assert.ErrorIs(t, err, domain.ErrUnavailable)

	assert.ErrorContains(t, store.HealthCheck(context.Background()), "circuit breaker open")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_HealthCheck_PingFailure(t *testing.T) {
	t.Parallel()
	store, mock := newMockStore(t, Postgres)

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	err := store.HealthCheck(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ping failed")
	assert.Equal(t, Name, store.Name())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_SQLiteRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store, err := Open(ctx, config.StorageConfig{
		Driver:         config.DriverSQLite,
		DSN:            ":memory:",
		AutoMigrate:    true,
		CircuitBreaker: testBreaker,
	}, discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	due := "2026-04-01T08:30:00Z"
	td, err := todo.New("Write report", "alice", nil, nil)
	require.NoError(t, err)
	td = td.UpdateDueDate(&due)
	require.NoError(t, store.Create(ctx, td))

	other, err := todo.New("Other owner", "bob", nil, nil)
	require.NoError(t, err)
	require.NoError(t, store.Create(ctx, other))

	got, err := store.Get(ctx, "alice", td.ID().String())
	require.NoError(t, err)
	assert.Equal(t, "Write report", got.Title().String())
	assert.Equal(t, due, got.DueDate())
	assert.False(t, got.IsComplete())
	assert.False(t, got.HasChanges())

	desc := "final draft"
	completed := got.UpdateDescription(&desc).SetCompleted()
	require.NoError(t, store.Create(ctx, completed))

	list, err := store.List(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, list[0].IsComplete())
	assert.Equal(t, completed.CompletedOn(), list[0].CompletedOn())
	assert.Equal(t, "final draft", list[0].Description())

	_, err = store.Get(ctx, "bob", td.ID().String())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, store.Migrate(ctx), "schema is idempotent")
	assert.NoError(t, store.HealthCheck(ctx))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), config.StorageConfig{Driver: "memory"}, discardLogger())
	assert.Error(t, err)
}
