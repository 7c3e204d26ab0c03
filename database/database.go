// Package database owns the pooled PostgreSQL connection and its lifecycle.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/methodhub/backend/config"
)

// DB wraps the connection pool.
type DB struct {
	*sqlx.DB
}

// New connects to PostgreSQL, verifies the connection and applies pool limits.
func New(cfg config.Config) (*DB, error) {
	db, err := sqlx.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	db.SetMaxOpenConns(100)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(10 * time.Minute)

	log.Info().
		Str("host", cfg.DBHost).
		Str("database", cfg.DBName).
		Msg("database connection established")

	return &DB{DB: db}, nil
}

// NewFromSqlx wraps an already open pool. Used by tests with sqlmock.
func NewFromSqlx(db *sqlx.DB) *DB {
	return &DB{DB: db}
}

// WithTransaction runs fn inside a transaction on a dedicated connection.
// It commits on success, rolls back and returns the error on failure, and
// re-raises panics after rolling back.
func (db *DB) WithTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// IsConnected reports whether the pool can still reach the server.
func (db *DB) IsConnected(ctx context.Context) bool {
	return db.PingContext(ctx) == nil
}

// Close drains the pool.
func (db *DB) Close() error {
	log.Info().Msg("closing database connection pool")
	return db.DB.Close()
}
