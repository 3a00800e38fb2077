// Package database provides database connection management.
package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/k-hirata/defstore/internal/config"
)

// FileName is the fixed name of the database file inside the configured directory.
const FileName = "dictionary.db"

func init() {
	// modernc.org/sqlite registers itself as "sqlite", which sqlx does not
	// know a bindvar type for by default.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Open opens a SQLite connection using the provided config.
// When no directory is configured, the database lives in memory and is lost
// when the process exits.
func Open(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	dsn := ":memory:"
	if cfg.Directory != "" {
		// Ignore a mkdir failure; the open below surfaces the real error.
		_ = os.MkdirAll(cfg.Directory, 0o755)
		dsn = filepath.Join(cfg.Directory, FileName)
	}

	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database connection: %w", err)
	}

	// A single connection keeps an in-memory database alive across queries
	// and serializes access to a file-backed one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return db, nil
}

// RunInTx runs fn within a database transaction.
// If fn returns an error, the transaction is rolled back; otherwise, it is committed.
func RunInTx(ctx context.Context, db *sqlx.DB, fn func(ctx context.Context, tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback transaction: %w (original error: %v)", rbErr, err)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
