package model

import "time"

// TranscriptionResult is the immutable outcome of one transcription run.
type TranscriptionResult struct {
	Text              string
	Elapsed           time.Duration
	ProviderUsed      string
	LanguageRequested string
	SourceName        string
	SourceType        string
	DurationSeconds   float64
	HistoryID         int64
}
