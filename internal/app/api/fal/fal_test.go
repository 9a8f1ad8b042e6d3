package fal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"media2text/internal/app/api/provider"
	apperrors "media2text/internal/app/errors"
)

func writeAudioFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clip.mp3")
	require.NoError(t, os.WriteFile(path, []byte("payload"), 0o644))
	return path
}

func newUploadServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "clip.mp3", header.Filename)
		w.Write([]byte(`{"data":{"url":"https://tmpfiles.org/123456/clip.mp3"}}`))
	}))
}

func TestTranscribeUploadsThenCalls(t *testing.T) {
	upload := newUploadServer(t)
	defer upload.Close()

	var got falRequest
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Key fal-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"text":"wizper says hi"}`))
	}))
	defer api.Close()

	tr := New(Config{APIKey: "fal-test", BaseURL: api.URL, UploadURL: upload.URL})
	resp, err := tr.Transcribe(context.Background(), provider.Request{
		AudioPath: writeAudioFixture(t),
		Language:  "en",
	})
	require.NoError(t, err)
	assert.Equal(t, "wizper says hi", resp.Text)
	assert.Greater(t, resp.Elapsed.Nanoseconds(), int64(0))
	assert.Equal(t, "https://tmpfiles.org/dl/123456/clip.mp3", got.AudioURL)
	assert.Equal(t, "transcribe", got.Task)
	assert.Equal(t, "en", got.Language)
	assert.Equal(t, "segment", got.ChunkLevel)
	assert.Equal(t, "3", got.Version)
}

func TestTranscribeSendsAutoLiterally(t *testing.T) {
	upload := newUploadServer(t)
	defer upload.Close()

	var got falRequest
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"text":"ok"}`))
	}))
	defer api.Close()

	tr := New(Config{APIKey: "fal-test", BaseURL: api.URL, UploadURL: upload.URL})

	for _, language := range []string{provider.LanguageAuto, ""} {
		_, err := tr.Transcribe(context.Background(), provider.Request{
			AudioPath: writeAudioFixture(t),
			Language:  language,
		})
		require.NoError(t, err)
		assert.Equal(t, "auto", got.Language)
	}
}

func TestTranscribeAPIErrorClassification(t *testing.T) {
	upload := newUploadServer(t)
	defer upload.Close()

	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, want: apperrors.ErrProviderAuth},
		{name: "rate_limited", status: http.StatusTooManyRequests, want: apperrors.ErrProviderRateLimit},
		{name: "unprocessable", status: http.StatusUnprocessableEntity, want: apperrors.ErrProviderFormat},
		{name: "server_error", status: http.StatusBadGateway, want: apperrors.ErrProviderNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer api.Close()

			tr := New(Config{APIKey: "fal-test", BaseURL: api.URL, UploadURL: upload.URL})
			_, err := tr.Transcribe(context.Background(), provider.Request{
				AudioPath: writeAudioFixture(t),
			})
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestUploadFailureStopsEarly(t *testing.T) {
	upload := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer upload.Close()

	apiCalled := false
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiCalled = true
	}))
	defer api.Close()

	tr := New(Config{APIKey: "fal-test", BaseURL: api.URL, UploadURL: upload.URL})
	_, err := tr.Transcribe(context.Background(), provider.Request{
		AudioPath: writeAudioFixture(t),
	})
	assert.True(t, errors.Is(err, apperrors.ErrProviderNetwork), "got %v", err)
	assert.False(t, apiCalled)
}
