package converter

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "media2text/internal/app/errors"
	"media2text/internal/app/model"
	"media2text/internal/app/pipeline"
	"media2text/internal/app/service"
	"media2text/internal/app/testutil"
	"media2text/internal/logging"
)

type stubProber struct{}

func (stubProber) Duration(ctx context.Context, path string) (float64, error) {
	return 5.0, nil
}

func newConverter(t *testing.T, mock *testutil.MockProvider, history *testutil.MemoryHistoryDAO) *Converter {
	t.Helper()
	preparer := pipeline.NewPreparer(logging.NewNop(),
		pipeline.WithProber(stubProber{}),
		pipeline.WithBaseDir(t.TempDir()))
	svc := service.New(mock, preparer, history, nil, "", logging.NewNop())
	return NewConverter(svc, history, logging.NewNop())
}

func writeMediaDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for i, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("audio"), 0o644))
		mtime := time.Now().Add(time.Duration(i-len(names)) * time.Hour)
		require.NoError(t, os.Chtimes(path, mtime, mtime))
	}
	return dir
}

func TestConvertDirTranscribesAll(t *testing.T) {
	mock := testutil.NewMockProvider("openai")
	history := testutil.NewMemoryHistoryDAO()
	c := newConverter(t, mock, history)

	dir := writeMediaDir(t, "a.mp3", "b.wav", "notes.txt")
	result, err := c.ConvertDir(context.Background(), Options{InputDir: dir, Language: "en"})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Processed)
	assert.Zero(t, result.Skipped)
	assert.Zero(t, result.Failed)
	assert.Equal(t, 2, mock.CallCount)

	records, err := history.List(10, 0)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestConvertDirSkipsProcessed(t *testing.T) {
	mock := testutil.NewMockProvider("openai")
	history := testutil.NewMemoryHistoryDAO()
	_, err := history.Save(&model.HistoryRecord{
		CreatedAt:  time.Now(),
		SourceName: "a.mp3",
		SourceType: model.SourceTypeFile,
		APIUsed:    "openai",
		Language:   "en",
		Transcript: "already done",
	})
	require.NoError(t, err)

	c := newConverter(t, mock, history)
	dir := writeMediaDir(t, "a.mp3", "b.mp3")

	result, err := c.ConvertDir(context.Background(), Options{InputDir: dir})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 1, mock.CallCount)
}

func TestConvertDirLimit(t *testing.T) {
	mock := testutil.NewMockProvider("openai")
	c := newConverter(t, mock, testutil.NewMemoryHistoryDAO())
	dir := writeMediaDir(t, "a.mp3", "b.mp3", "c.mp3")

	result, err := c.ConvertDir(context.Background(), Options{InputDir: dir, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 2, mock.CallCount)
}

func TestConvertDirCountsFailures(t *testing.T) {
	mock := testutil.NewMockProvider("openai")
	history := testutil.NewMemoryHistoryDAO()
	c := newConverter(t, mock, history)

	dir := writeMediaDir(t, "bad.mp3", "good.mp3")
	mock.ErrorMap[filepath.Join(dir, "bad.mp3")] = apperrors.ErrProviderNetwork

	result, err := c.ConvertDir(context.Background(), Options{InputDir: dir})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Failed)

	records, err := history.List(10, 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "good.mp3", records[0].SourceName)
}

func TestConvertDirParallel(t *testing.T) {
	mock := testutil.NewMockProvider("groq")
	c := newConverter(t, mock, testutil.NewMemoryHistoryDAO())
	dir := writeMediaDir(t, "a.mp3", "b.mp3", "c.mp3", "d.mp3")

	result, err := c.ConvertDir(context.Background(), Options{InputDir: dir, Parallel: 3})
	require.NoError(t, err)
	assert.Equal(t, 4, result.Processed)
}

func TestConvertDirEmpty(t *testing.T) {
	mock := testutil.NewMockProvider("openai")
	c := newConverter(t, mock, testutil.NewMemoryHistoryDAO())

	result, err := c.ConvertDir(context.Background(), Options{InputDir: t.TempDir()})
	require.NoError(t, err)
	assert.Zero(t, result.Processed)
	assert.Zero(t, mock.CallCount)
}
