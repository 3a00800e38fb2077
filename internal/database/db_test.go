package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k-hirata/defstore/internal/config"
)

func TestOpen(t *testing.T) {
	t.Run("opens an in-memory database when no directory is configured", func(t *testing.T) {
		db, err := Open(config.DatabaseConfig{})
		require.NoError(t, err)
		defer db.Close()

		// The in-memory database must survive across statements on the
		// shared connection.
		_, err = db.Exec("CREATE TABLE t (v TEXT)")
		require.NoError(t, err)
		_, err = db.Exec("INSERT INTO t (v) VALUES ('x')")
		require.NoError(t, err)

		var count int
		require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM t"))
		assert.Equal(t, 1, count)
	})

	t.Run("creates the database file inside the configured directory", func(t *testing.T) {
		dir := t.TempDir()

		db, err := Open(config.DatabaseConfig{Directory: dir})
		require.NoError(t, err)
		defer db.Close()

		_, err = db.Exec("CREATE TABLE t (v TEXT)")
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(dir, FileName))
		assert.NoError(t, err)
	})

	t.Run("creates a missing directory recursively", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "data")

		db, err := Open(config.DatabaseConfig{Directory: dir})
		require.NoError(t, err)
		defer db.Close()

		_, err = db.Exec("CREATE TABLE t (v TEXT)")
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(dir, FileName))
		assert.NoError(t, err)
	})

	t.Run("data survives a reopen", func(t *testing.T) {
		dir := t.TempDir()

		db, err := Open(config.DatabaseConfig{Directory: dir})
		require.NoError(t, err)
		_, err = db.Exec("CREATE TABLE t (v TEXT)")
		require.NoError(t, err)
		_, err = db.Exec("INSERT INTO t (v) VALUES ('x')")
		require.NoError(t, err)
		require.NoError(t, db.Close())

		reopened, err := Open(config.DatabaseConfig{Directory: dir})
		require.NoError(t, err)
		defer reopened.Close()

		var count int
		require.NoError(t, reopened.Get(&count, "SELECT COUNT(*) FROM t"))
		assert.Equal(t, 1, count)
	})
}

func TestRunInTx(t *testing.T) {
	newDB := func(t *testing.T) *sqlx.DB {
		t.Helper()
		db, err := Open(config.DatabaseConfig{})
		require.NoError(t, err)
		t.Cleanup(func() {
			_ = db.Close()
		})
		_, err = db.Exec("CREATE TABLE t (v TEXT)")
		require.NoError(t, err)
		return db
	}

	t.Run("commits when fn succeeds", func(t *testing.T) {
		db := newDB(t)

		err := RunInTx(context.Background(), db, func(ctx context.Context, tx *sqlx.Tx) error {
			_, err := tx.ExecContext(ctx, "INSERT INTO t (v) VALUES ('x')")
			return err
		})
		require.NoError(t, err)

		var count int
		require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM t"))
		assert.Equal(t, 1, count)
	})

	t.Run("rolls back when fn fails", func(t *testing.T) {
		db := newDB(t)

		err := RunInTx(context.Background(), db, func(ctx context.Context, tx *sqlx.Tx) error {
			if _, err := tx.ExecContext(ctx, "INSERT INTO t (v) VALUES ('x')"); err != nil {
				return err
			}
			return fmt.Errorf("boom")
		})
		assert.ErrorContains(t, err, "boom")

		var count int
		require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM t"))
		assert.Equal(t, 0, count)
	})
}
