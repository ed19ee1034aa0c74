package database

import (
	"context"
	"fmt"
)

// The UNIQUE constraint on users.email is the source of truth for identity
// uniqueness; the service-level duplicate pre-check only provides the
// friendly error message. task_ids holds back-references to tasks created by
// the user and is only ever mutated inside the same transaction that writes
// the tasks row.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		task_ids      TEXT[] NOT NULL DEFAULT '{}',
		created_at    TIMESTAMPTZ NOT NULL,
		updated_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		creator_id TEXT NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_creator_id ON tasks(creator_id)`,
}

// EnsureSchema creates the tables on the primary if they do not exist yet.
func (m *DBManager) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := m.primary.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
