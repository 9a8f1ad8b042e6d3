// Package converter runs transcription over whole directories,
// skipping files that are already in history.
package converter

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	apperrors "media2text/internal/app/errors"
	"media2text/internal/app/model"
	"media2text/internal/app/repository"
	"media2text/internal/app/service"
	"media2text/internal/app/util/files"
)

// Converter transcribes every supported media file in a directory.
type Converter struct {
	service *service.Service
	history repository.HistoryDAO
	log     *zap.SugaredLogger
}

func NewConverter(svc *service.Service, history repository.HistoryDAO, log *zap.SugaredLogger) *Converter {
	return &Converter{
		service: svc,
		history: history,
		log:     log,
	}
}

func (c *Converter) Close() error {
	return c.history.Close()
}

// Options controls a directory run.
type Options struct {
	InputDir string
	Language string
	// Limit caps how many unprocessed files get transcribed, 0 means
	// all of them.
	Limit int
	// Parallel is the number of files in flight at once, minimum 1.
	Parallel int
	Progress ProgressConfig
}

// Result summarizes a directory run.
type Result struct {
	Processed int
	Skipped   int
	Failed    int
}

// ConvertDir transcribes the unprocessed files in opts.InputDir,
// oldest first. Individual file failures are logged and counted, they
// do not stop the run.
func (c *Converter) ConvertDir(ctx context.Context, opts Options) (*Result, error) {
	fileInfos, err := files.ListMediaFiles(opts.InputDir)
	if err != nil {
		return nil, err
	}

	toProcess, skipped := c.filterUnprocessed(fileInfos, opts.Limit)
	result := &Result{Skipped: skipped}
	if len(toProcess) == 0 {
		c.log.Infow("nothing to do", "dir", opts.InputDir, "skipped", skipped)
		return result, nil
	}

	parallel := opts.Parallel
	if parallel < 1 {
		parallel = 1
	}

	manager := NewProgressManager(opts.Progress)
	defer manager.Wait()
	bar := manager.CreateBar(len(toProcess), "Transcribing")

	var wg sync.WaitGroup
	var mu sync.Mutex
	sem := make(chan struct{}, parallel)

	for _, file := range toProcess {
		wg.Add(1)
		go func(file model.FileInfo) {
			defer wg.Done()
			defer bar.Increment()

			sem <- struct{}{}
			_, err := c.service.TranscribeFile(ctx, file.FullPath, opts.Language)
			<-sem

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed++
				c.log.Errorw("file failed", "file", file.Name, "error", err)
				return
			}
			result.Processed++
		}(file)
	}
	wg.Wait()
	bar.Complete()

	c.log.Infow("directory run finished", "dir", opts.InputDir,
		"processed", result.Processed, "skipped", result.Skipped, "failed", result.Failed)
	return result, nil
}

func (c *Converter) filterUnprocessed(fileInfos []model.FileInfo, limit int) (toProcess []model.FileInfo, skipped int) {
	for _, fileInfo := range fileInfos {
		id, err := c.history.CheckIfProcessed(fileInfo.Name)
		if err == nil {
			c.log.Infow("already processed, skipping", "file", fileInfo.Name, "id", id)
			skipped++
			continue
		}
		if !errors.Is(err, apperrors.ErrRecordNotFound) {
			c.log.Warnw("history lookup failed, processing anyway", "file", fileInfo.Name, "error", err)
		}

		toProcess = append(toProcess, fileInfo)
		if limit > 0 && len(toProcess) >= limit {
			break
		}
	}
	return toProcess, skipped
}
