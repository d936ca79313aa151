package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestObraInsertQueryCoversAllColumns(t *testing.T) {
	query := obraInsertQuery()
	for _, col := range obraColumns {
		assert.Contains(t, query, col)
		assert.Contains(t, query, ":"+col)
	}
	assert.Equal(t, len(obraColumns), strings.Count(query, ":"))
}

func TestObraUpdateQuerySkipsInsertedAt(t *testing.T) {
	query := obraUpdateQuery()
	assert.NotContains(t, query, "inserted_at = :inserted_at")
	assert.Contains(t, query, "updated_at = :updated_at")
	assert.Contains(t, query, "WHERE id = :id")
}

func TestReplaceAll(t *testing.T) {
	db, mock := newMockDB(t)
	store := &ObraStore{db: db}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM obras").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO obras").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := store.ReplaceAll(context.Background(), []Obra{
		{Programa: "Parque Central"},
		{Programa: "Mercado Norte"},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAllRollsBackOnFailure(t *testing.T) {
	db, mock := newMockDB(t)
	store := &ObraStore{db: db}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM obras").WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	err := store.ReplaceAll(context.Background(), []Obra{{Programa: "Parque"}})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceAllEmptyBatchStillClears(t *testing.T) {
	db, mock := newMockDB(t)
	store := &ObraStore{db: db}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM obras").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	require.NoError(t, store.ReplaceAll(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	db, mock := newMockDB(t)
	store := &ObraStore{db: db}

	rows := sqlmock.NewRows([]string{"id", "programa"}).AddRow(7, "Parque Central")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM obras WHERE id = $1")).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	obra, err := store.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), obra.ID)
	assert.Equal(t, "Parque Central", obra.Programa)
}

func TestGetByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	store := &ObraStore{db: db}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM obras WHERE id = $1")).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := store.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	store := &ObraStore{db: db}

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM obras WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, store.Delete(context.Background(), 3), ErrNotFound)
}

func TestImportHistoryInsertReadsGeneratedFields(t *testing.T) {
	db, mock := newMockDB(t)
	store := &ImportHistoryStore{db: db}

	processedAt := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "processed_at"}).AddRow(5, processedAt)
	mock.ExpectQuery("INSERT INTO import_history").WillReturnRows(rows)

	history := &ImportHistory{
		SourceFile:  "datos.xlsx",
		TriggerType: TriggerTypeManual,
		Status:      ImportStatusInProgress,
	}
	require.NoError(t, store.Insert(context.Background(), history))
	assert.Equal(t, int64(5), history.ID)
	assert.Equal(t, processedAt, history.ProcessedAt)
}
