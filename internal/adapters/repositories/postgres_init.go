package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createSessionRoutesQuery := `
	CREATE TABLE IF NOT EXISTS session_routes (
		session_id TEXT PRIMARY KEY,
		route JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createUpdatedAtIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_session_routes_updated_at
	ON session_routes(updated_at);
	`

	statements := []string{
		createSessionRoutesQuery,
		createUpdatedAtIndexQuery,
	}

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
