package dictionary

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/k-hirata/defstore/internal/database"
)

const createSchemaSQL = `
CREATE TABLE IF NOT EXISTS dictionary (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	word TEXT NOT NULL COLLATE NOCASE,
	definition TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_word ON dictionary(word COLLATE NOCASE);
`

// EntryRepository defines operations for managing dictionary entries.
type EntryRepository interface {
	CreateSchema(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
	InsertBatch(ctx context.Context, entries []Entry) error
	FindDefinitions(ctx context.Context, word string) ([]string, error)
	FindDefinitionsByPrefix(ctx context.Context, prefix string, limit int) ([]string, error)
}

// DBEntryRepository implements EntryRepository using SQLite.
type DBEntryRepository struct {
	db *sqlx.DB
}

// NewDBEntryRepository creates a new DBEntryRepository.
func NewDBEntryRepository(db *sqlx.DB) *DBEntryRepository {
	return &DBEntryRepository{db: db}
}

// CreateSchema creates the dictionary table and its word index if they do not exist.
func (r *DBEntryRepository) CreateSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createSchemaSQL); err != nil {
		return fmt.Errorf("create dictionary schema: %w", err)
	}
	return nil
}

// Count returns the number of stored entries.
func (r *DBEntryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM dictionary"); err != nil {
		return 0, fmt.Errorf("count dictionary entries: %w", err)
	}
	return count, nil
}

// InsertBatch inserts all entries within a single transaction.
func (r *DBEntryRepository) InsertBatch(ctx context.Context, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		for _, e := range entries {
			_, err := tx.NamedExecContext(ctx,
				"INSERT INTO dictionary (word, definition) VALUES (:word, :definition)",
				e)
			if err != nil {
				return fmt.Errorf("insert dictionary entry: %w", err)
			}
		}
		return nil
	})
}

// FindDefinitions returns every definition whose word equals the given word,
// compared case-insensitively.
func (r *DBEntryRepository) FindDefinitions(ctx context.Context, word string) ([]string, error) {
	var definitions []string
	if err := r.db.SelectContext(ctx, &definitions,
		"SELECT definition FROM dictionary WHERE word = ? COLLATE NOCASE", word); err != nil {
		return nil, fmt.Errorf("find definitions: %w", err)
	}
	return definitions, nil
}

// FindDefinitionsByPrefix returns up to limit definitions whose word starts
// with the given prefix, compared case-insensitively.
func (r *DBEntryRepository) FindDefinitionsByPrefix(ctx context.Context, prefix string, limit int) ([]string, error) {
	var definitions []string
	if err := r.db.SelectContext(ctx, &definitions,
		"SELECT definition FROM dictionary WHERE word LIKE ? COLLATE NOCASE LIMIT ?", prefix+"%", limit); err != nil {
		return nil, fmt.Errorf("find definitions by prefix: %w", err)
	}
	return definitions, nil
}
