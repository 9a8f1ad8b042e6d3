package pg

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "media2text/internal/app/errors"
	"media2text/internal/app/model"
	"media2text/internal/app/repository"
)

func TestHistoryDBImplementsDAO(t *testing.T) {
	var _ repository.HistoryDAO = (*HistoryDB)(nil)
}

func newMockDB(t *testing.T) (*HistoryDB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &HistoryDB{db: db}, mock
}

func recordColumns() []string {
	return []string{"id", "created_at", "source_name", "source_type", "api_used", "language", "duration", "transcript", "favorite"}
}

func TestSaveReturnsID(t *testing.T) {
	h, mock := newMockDB(t)

	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO transcriptions`)).
		WithArgs(createdAt, "talk.mp3", model.SourceTypeFile, "groq", "auto", 42.0, "hello", false).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	id, err := h.Save(&model.HistoryRecord{
		CreatedAt:  createdAt,
		SourceName: "talk.mp3",
		SourceType: model.SourceTypeFile,
		APIUsed:    "groq",
		Language:   "auto",
		Duration:   42.0,
		Transcript: "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID(t *testing.T) {
	h, mock := newMockDB(t)

	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, created_at, source_name, source_type, api_used, language, duration, transcript, favorite`)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(recordColumns()).
			AddRow(int64(7), createdAt, "talk.mp3", "file", "groq", "auto", 42.0, "hello", true))

	record, err := h.GetByID(7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), record.ID)
	assert.Equal(t, "talk.mp3", record.SourceName)
	assert.True(t, record.Favorite)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDNotFound(t *testing.T) {
	h, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT`)).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(recordColumns()))

	_, err := h.GetByID(99)
	assert.True(t, errors.Is(err, apperrors.ErrRecordNotFound), "got %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListScansRows(t *testing.T) {
	h, mock := newMockDB(t)

	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`)).
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows(recordColumns()).
			AddRow(int64(2), createdAt, "b.mp3", "file", "openai", "en", 10.0, "second", false).
			AddRow(int64(1), createdAt, "a.mp3", "url", "fal", "auto", 20.0, "first", false))

	records, err := h.List(10, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "b.mp3", records[0].SourceName)
	assert.Equal(t, "url", records[1].SourceType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchUsesPattern(t *testing.T) {
	h, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE source_name ILIKE $1 OR transcript ILIKE $1`)).
		WithArgs("%roadmap%", 5).
		WillReturnRows(sqlmock.NewRows(recordColumns()))

	records, err := h.Search("roadmap", 5)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleFavorite(t *testing.T) {
	h, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE transcriptions SET favorite = NOT favorite WHERE id = $1 RETURNING favorite`)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"favorite"}).AddRow(true))

	favorite, err := h.ToggleFavorite(3)
	require.NoError(t, err)
	assert.True(t, favorite)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMissingRecord(t *testing.T) {
	h, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM transcriptions WHERE id = $1`)).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := h.Delete(404)
	assert.True(t, errors.Is(err, apperrors.ErrRecordNotFound), "got %v", err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckIfProcessed(t *testing.T) {
	h, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM transcriptions WHERE source_name = $1`)).
		WithArgs("talk.mp3").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

	id, err := h.CheckIfProcessed("talk.mp3")
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}
