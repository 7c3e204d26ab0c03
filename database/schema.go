package database

import "context"

// Schema for the five MethodHub tables. Unique names and the favorit
// composite key live here so concurrent writers that slip past the service
// pre-checks fail at the storage layer; the repository layer translates
// those failures to conflicts. Foreign keys restrict deletes, so removing a
// theme or category that still has dependents is refused.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS "user" (
		id            SERIAL PRIMARY KEY,
		name          VARCHAR(150) NOT NULL,
		email         VARCHAR(150) NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		is_admin      BOOLEAN NOT NULL DEFAULT FALSE,
		is_banned     BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS theme (
		id          SERIAL PRIMARY KEY,
		name        VARCHAR(150) NOT NULL UNIQUE,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS category (
		id          SERIAL PRIMARY KEY,
		name        VARCHAR(150) NOT NULL UNIQUE,
		description TEXT,
		theme       INTEGER NOT NULL REFERENCES theme(id)
	)`,
	`CREATE TABLE IF NOT EXISTS material (
		id          SERIAL PRIMARY KEY,
		title       VARCHAR(300) NOT NULL,
		description TEXT,
		text        TEXT,
		author      VARCHAR(150) NOT NULL,
		category    INTEGER NOT NULL REFERENCES category(id),
		theme       INTEGER NOT NULL REFERENCES theme(id),
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS favorit (
		material_id INTEGER NOT NULL REFERENCES material(id) ON DELETE CASCADE,
		user_id     INTEGER NOT NULL REFERENCES "user"(id) ON DELETE CASCADE,
		PRIMARY KEY (material_id, user_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_category_theme ON category(theme)`,
	`CREATE INDEX IF NOT EXISTS idx_material_category ON material(category)`,
	`CREATE INDEX IF NOT EXISTS idx_material_theme ON material(theme)`,
}

// EnsureSchema creates missing tables and indexes on startup.
func (db *DB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
