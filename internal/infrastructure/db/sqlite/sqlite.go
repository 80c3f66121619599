// Package sqlite is the persistence gateway: it owns the pooled database
// handle and is the only package that speaks SQL or inspects driver error
// codes. Repositories translate vendor constraint violations into domain
// errors so the service layer never sees them.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	sqlite3 "github.com/mattn/go-sqlite3"
)

const defaultTimeout = 10 * time.Second

// Config captures the minimal settings required to open the database.
type Config struct {
	Path    string
	Timeout time.Duration
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	username      TEXT    NOT NULL,
	email         TEXT    NOT NULL UNIQUE,
	password_hash TEXT    NOT NULL,
	role          TEXT    NOT NULL DEFAULT 'user',
	is_paid       BOOLEAN NOT NULL DEFAULT 0,
	created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS ingredients (
	id   INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT    NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS recipes (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id       INTEGER NOT NULL REFERENCES users(id),
	name          TEXT    NOT NULL,
	description   TEXT,
	cook_time     INTEGER NOT NULL DEFAULT 0,
	base_servings INTEGER NOT NULL DEFAULT 1,
	is_private    BOOLEAN NOT NULL DEFAULT 0,
	difficulty    TEXT,
	category      TEXT,
	image_url     TEXT,
	created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_recipes_user ON recipes(user_id);

CREATE TABLE IF NOT EXISTS recipe_ingredients (
	recipe_id            INTEGER NOT NULL REFERENCES recipes(id),
	ingredient_id        INTEGER NOT NULL REFERENCES ingredients(id) ON DELETE RESTRICT,
	quantity_per_serving TEXT,
	unit                 TEXT,
	note                 TEXT,
	PRIMARY KEY (recipe_id, ingredient_id)
);

CREATE TABLE IF NOT EXISTS favorites (
	user_id    INTEGER NOT NULL REFERENCES users(id),
	recipe_id  INTEGER NOT NULL REFERENCES recipes(id),
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (user_id, recipe_id)
);
`

// Connect opens the database, verifies connectivity and applies the schema.
// Foreign key enforcement is switched on via the DSN; without it the
// delete-restrict guard on ingredients would silently not exist.
func Connect(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", cfg.Path)
	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite ping: %w", err)
	}

	if _, err := db.ExecContext(pingCtx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}

	return db, nil
}

// isUniqueViolation reports whether err is a unique or primary key
// constraint failure.
func isUniqueViolation(err error) bool {
	var se sqlite3.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.ExtendedCode == sqlite3.ErrConstraintUnique ||
		se.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}

// isForeignKeyViolation reports whether err is a foreign key constraint
// failure (a referenced or referencing row blocks the write).
func isForeignKeyViolation(err error) bool {
	var se sqlite3.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.ExtendedCode == sqlite3.ErrConstraintForeignKey ||
		se.ExtendedCode == sqlite3.ErrConstraintTrigger
}

// clamp bounds n to [min, max].
func clamp(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// nonNegative bounds an offset to >= 0.
func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// nullString maps an empty string to NULL, matching the stored shape of
// optional columns.
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
