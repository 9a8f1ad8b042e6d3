package repository

import (
	"media2text/internal/app/model"
)

// HistoryDAO stores finished transcriptions so past results can be
// listed, searched and exported without calling the API again.
type HistoryDAO interface {
	Close() error

	// Save inserts a finished transcription and returns its id.
	Save(record *model.HistoryRecord) (int64, error)

	GetByID(id int64) (*model.HistoryRecord, error)

	// List returns records newest first.
	List(limit, offset int) ([]model.HistoryRecord, error)

	// Search matches the query against source name and transcript.
	Search(query string, limit int) ([]model.HistoryRecord, error)

	ToggleFavorite(id int64) (bool, error)

	Delete(id int64) error

	// CheckIfProcessed returns the id of an existing record for the
	// source name, or ErrRecordNotFound.
	CheckIfProcessed(sourceName string) (int64, error)
}
