package model

import "time"

// SourceType says where the transcribed media came from.
const (
	SourceTypeFile = "file"
	SourceTypeURL  = "url"
)

// HistoryRecord is one row of the transcription history store.
// Append-only except for the favorite toggle and delete.
type HistoryRecord struct {
	ID         int64
	CreatedAt  time.Time
	SourceName string
	SourceType string
	APIUsed    string
	Language   string
	Duration   float64
	Transcript string
	Favorite   bool
}
