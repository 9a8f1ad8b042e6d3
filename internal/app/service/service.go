// Package service orchestrates one transcription end to end: resolve
// the source, prepare the audio, call the provider, persist the
// result.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"media2text/internal/app/api/provider"
	"media2text/internal/app/model"
	"media2text/internal/app/pipeline"
	"media2text/internal/app/repository"
	"media2text/internal/downloader"
)

// Fetcher resolves a URL into a local media file.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL, dir string) (*downloader.Fetched, error)
}

// Service runs single transcription jobs.
type Service struct {
	provider provider.Provider
	preparer *pipeline.Preparer
	history  repository.HistoryDAO
	fetcher  Fetcher
	log      *zap.SugaredLogger

	downloadDir string
}

func New(p provider.Provider, preparer *pipeline.Preparer, history repository.HistoryDAO,
	fetcher Fetcher, downloadDir string, log *zap.SugaredLogger) *Service {
	return &Service{
		provider:    p,
		preparer:    preparer,
		history:     history,
		fetcher:     fetcher,
		log:         log,
		downloadDir: downloadDir,
	}
}

// TranscribeFile prepares a local media file and transcribes it.
// Failed attempts are logged but never recorded in history.
func (s *Service) TranscribeFile(ctx context.Context, inputPath, language string) (*model.TranscriptionResult, error) {
	return s.transcribe(ctx, inputPath, "", language)
}

// TranscribeURL downloads the media behind a URL, then transcribes it
// like a local file. The download is kept after transcription.
func (s *Service) TranscribeURL(ctx context.Context, rawURL, language string) (*model.TranscriptionResult, error) {
	fetched, err := s.fetcher.Fetch(ctx, rawURL, s.downloadDir)
	if err != nil {
		s.log.Errorw("download failed", "url", rawURL, "error", err)
		return nil, err
	}
	return s.transcribe(ctx, fetched.FilePath, rawURL, language)
}

func (s *Service) transcribe(ctx context.Context, inputPath, sourceURL, language string) (*model.TranscriptionResult, error) {
	job, err := s.preparer.Prepare(ctx, inputPath)
	if err != nil {
		s.log.Errorw("media preparation failed", "input", inputPath, "error", err)
		return nil, err
	}
	defer job.Cleanup()

	if language == "" {
		language = provider.LanguageAuto
	}

	s.log.Infow("transcribing", "source", job.SourceName, "provider", s.provider.Name(), "language", language)
	resp, err := s.provider.Transcribe(ctx, provider.Request{
		AudioPath: job.WorkingPath,
		Language:  language,
	})
	if err != nil {
		s.log.Errorw("transcription failed", "source", job.SourceName, "provider", s.provider.Name(), "error", err)
		return nil, err
	}

	// Duration is informational; a probe failure here must not throw
	// away a finished transcript.
	duration, err := job.Duration(ctx)
	if err != nil {
		s.log.Warnw("could not probe duration", "source", job.SourceName, "error", err)
		duration = 0
	}

	result := &model.TranscriptionResult{
		Text:              resp.Text,
		Elapsed:           resp.Elapsed,
		ProviderUsed:      s.provider.Name(),
		LanguageRequested: language,
		SourceName:        job.SourceName,
		SourceType:        model.SourceTypeFile,
		DurationSeconds:   duration,
	}

	record := &model.HistoryRecord{
		CreatedAt:  time.Now().UTC(),
		SourceName: job.SourceName,
		SourceType: model.SourceTypeFile,
		APIUsed:    s.provider.Name(),
		Language:   language,
		Duration:   duration,
		Transcript: resp.Text,
	}
	if sourceURL != "" {
		result.SourceType = model.SourceTypeURL
		result.SourceName = sourceURL
		record.SourceType = model.SourceTypeURL
		record.SourceName = sourceURL
	}

	id, err := s.history.Save(record)
	if err != nil {
		s.log.Errorw("could not save transcript to history", "source", record.SourceName, "error", err)
	} else {
		result.HistoryID = id
	}

	return result, nil
}
