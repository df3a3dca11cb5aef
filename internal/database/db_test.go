package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fretlog/fretlog/internal/config"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := Open(config.DatabaseConfig{
		Driver:       DriverSQLite,
		Path:         filepath.Join(t.TempDir(), "test.db"),
		MaxOpenConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: "postgres"})
	assert.Error(t, err)
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, Migrate(ctx, db))
	require.NoError(t, Migrate(ctx, db))

	var count int
	require.NoError(t, db.GetContext(ctx, &count, "SELECT COUNT(*) FROM items"))
	assert.Equal(t, 0, count)
}

func TestRunInTxCommits(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db))

	err := RunInTx(ctx, db, func(ctx context.Context, tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO items (item_id, title) VALUES (?, ?)", "a", "Alpha")
		return err
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, db.GetContext(ctx, &count, "SELECT COUNT(*) FROM items"))
	assert.Equal(t, 1, count)
}

func TestRunInTxRollsBackOnError(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db))

	boom := errors.New("boom")
	err := RunInTx(ctx, db, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO items (item_id, title) VALUES (?, ?)", "a", "Alpha"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int
	require.NoError(t, db.GetContext(ctx, &count, "SELECT COUNT(*) FROM items"))
	assert.Equal(t, 0, count)
}

func TestRunInTxRollsBackBeforeCommit(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	db := sqlx.NewDb(mockDB, DriverMySQL)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE items").WillReturnError(errors.New("deadlock"))
	mock.ExpectRollback()

	err = RunInTx(context.Background(), db, func(ctx context.Context, tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx, "UPDATE items SET sort_order = ?", 1)
		return err
	})
	assert.ErrorContains(t, err, "deadlock")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimestampFormat(t *testing.T) {
	ts := Timestamp()
	parsed, err := time.Parse(TimeFormat, ts)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, parsed.Location())
}

func TestErrorHelpers(t *testing.T) {
	assert.True(t, IsNotFound(ErrNotFound))
	assert.True(t, IsNotFound(errors.Join(errors.New("wrap"), ErrNotFound)))
	assert.False(t, IsNotFound(errors.New("other")))
	assert.False(t, IsNotFound(nil))

	assert.True(t, IsInvalidInput(ErrInvalidInput))
	assert.False(t, IsInvalidInput(ErrNotFound))
}
