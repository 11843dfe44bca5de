package repository

import (
	"context"
	"errors"
)

// Schema statements are all guarded by IF NOT EXISTS, so EnsureSchema is
// idempotent and safe to call on every startup against a live database.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS habits (
		id serial PRIMARY KEY,
		user_id text NOT NULL,
		name text NOT NULL,
		position integer NOT NULL DEFAULT 0,
		created_at timestamptz NOT NULL DEFAULT now()
	);`,
	`CREATE TABLE IF NOT EXISTS habit_completions (
		habit_id integer NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
		user_id text NOT NULL,
		day date NOT NULL,
		PRIMARY KEY (habit_id, day)
	);`,
	`CREATE INDEX IF NOT EXISTS idx_habits_user ON habits(user_id);`,
	`CREATE INDEX IF NOT EXISTS idx_completions_user_day ON habit_completions(user_id, day);`,
}

// EnsureSchema creates the two tables and two indexes if absent.
// Existing objects are a no-op, never an error.
func EnsureSchema(ctx context.Context, conn PgConnection) error {
	for _, stmt := range schemaStatements {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return errors.New("ensuring schema error: " + err.Error())
		}
	}
	return nil
}
