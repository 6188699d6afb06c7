package sqlstore

import (
	"context"
	"embed"
	"fmt"
	"strings"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// schemaStatements returns the DDL for d split into single statements, since
// the mysql driver rejects multi-statement Exec calls by default.
func schemaStatements(d Dialect) ([]string, error) {
	raw, err := schemaFS.ReadFile("schema/" + string(d) + ".sql")
	if err != nil {
		return nil, fmt.Errorf("reading %s schema: %w", d, err)
	}

	var stmts []string
	for _, stmt := range strings.Split(string(raw), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts, nil
}

// Migrate creates the todos table if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	stmts, err := schemaStatements(s.dialect)
	if err != nil {
		return err
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("applying %s schema: %w", s.dialect, err)
		}
	}
	return nil
}
