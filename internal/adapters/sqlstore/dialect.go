package sqlstore

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/jsamuelsen11/todo-lifecycle/internal/platform/config"
)

// Dialect identifies the SQL flavour the store generates statements for.
type Dialect string

// Supported dialects. The values double as database/sql driver names.
const (
	SQLite   Dialect = config.DriverSQLite
	Postgres Dialect = config.DriverPostgres
	MySQL    Dialect = config.DriverMySQL
)

// ParseDialect maps a storage driver name to a Dialect.
func ParseDialect(driver string) (Dialect, error) {
	switch d := Dialect(driver); d {
	case SQLite, Postgres, MySQL:
		return d, nil
	default:
		return "", fmt.Errorf("unsupported sql driver %q", driver)
	}
}

func (d Dialect) placeholder() sq.PlaceholderFormat {
	if d == Postgres {
		return sq.Dollar
	}
	return sq.Question
}

// upsertSuffix returns the clause that turns an INSERT into last-write-wins.
func (d Dialect) upsertSuffix(keys, cols []string) string {
	set := make([]string, 0, len(cols))
	for _, c := range cols {
		if d == MySQL {
			set = append(set, fmt.Sprintf("%s = VALUES(%s)", c, c))
		} else {
			set = append(set, fmt.Sprintf("%s = excluded.%s", c, c))
		}
	}

	if d == MySQL {
		return "ON DUPLICATE KEY UPDATE " + strings.Join(set, ", ")
	}
	return fmt.Sprintf("ON CONFLICT (%s) DO UPDATE SET %s", strings.Join(keys, ", "), strings.Join(set, ", "))
}
