package downloader

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"media2text/internal/logging"
)

func newDownloader(t *testing.T) *Downloader {
	t.Helper()
	return NewWithClient(logging.NewNop(), http.DefaultClient)
}

func TestFetchDirectMediaURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/media/episode.mp3", r.URL.Path)
		w.Write([]byte("mp3 bytes"))
	}))
	defer server.Close()

	dir := t.TempDir()
	fetched, err := newDownloader(t).Fetch(context.Background(), server.URL+"/media/episode.mp3", dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "episode.mp3"), fetched.FilePath)
	assert.Equal(t, "episode.mp3", fetched.Title)

	data, err := os.ReadFile(fetched.FilePath)
	require.NoError(t, err)
	assert.Equal(t, "mp3 bytes", string(data))
}

func TestFetchScrapesOpenGraphAudio(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("/episode/abc", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<html><head>
			<meta property="og:title" content="Weekly Talk: Episode 12" />
			<meta property="og:audio" content="%s/files/ep12.m4a" />
		</head><body></body></html>`, server.URL)
	})
	mux.HandleFunc("/files/ep12.m4a", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("m4a bytes"))
	})

	dir := t.TempDir()
	fetched, err := newDownloader(t).Fetch(context.Background(), server.URL+"/episode/abc", dir)
	require.NoError(t, err)

	assert.Equal(t, "Weekly Talk- Episode 12.m4a", filepath.Base(fetched.FilePath))
	assert.Equal(t, "Weekly Talk: Episode 12", fetched.Title)

	data, err := os.ReadFile(fetched.FilePath)
	require.NoError(t, err)
	assert.Equal(t, "m4a bytes", string(data))
}

func TestFetchPrefersAudioOverVideo(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	var downloaded string
	mux.HandleFunc("/page", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<html><head>
			<meta property="og:video" content="%s/clip.mp4" />
			<meta property="og:audio" content="%s/clip.mp3" />
		</head></html>`, server.URL, server.URL)
	})
	mux.HandleFunc("/clip.mp3", func(w http.ResponseWriter, r *http.Request) {
		downloaded = r.URL.Path
		w.Write([]byte("audio"))
	})
	mux.HandleFunc("/clip.mp4", func(w http.ResponseWriter, r *http.Request) {
		downloaded = r.URL.Path
		w.Write([]byte("video"))
	})

	_, err := newDownloader(t).Fetch(context.Background(), server.URL+"/page", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "/clip.mp3", downloaded)
}

func TestFetchSkipsCompleteDownload(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte("mp3 bytes"))
	}))
	defer server.Close()

	dir := t.TempDir()
	d := newDownloader(t)

	fetched, err := d.Fetch(context.Background(), server.URL+"/episode.mp3", dir)
	require.NoError(t, err)

	info, err := os.Stat(fetched.FilePath)
	require.NoError(t, err)
	before := info.ModTime()

	_, err = d.Fetch(context.Background(), server.URL+"/episode.mp3", dir)
	require.NoError(t, err)
	assert.Equal(t, 2, hits)

	info, err = os.Stat(fetched.FilePath)
	require.NoError(t, err)
	assert.Equal(t, before, info.ModTime(), "second fetch should not rewrite the file")
}

func TestFetchPageWithoutMediaTags(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><title>nothing here</title></head></html>`))
	}))
	defer server.Close()

	_, err := newDownloader(t).Fetch(context.Background(), server.URL+"/page", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "og:audio")
}

func TestFetchRejectsInvalidURL(t *testing.T) {
	_, err := newDownloader(t).Fetch(context.Background(), "not a url", t.TempDir())
	require.Error(t, err)

	_, err = newDownloader(t).Fetch(context.Background(), "ftp://example.com/file.mp3", t.TempDir())
	require.Error(t, err)
}

func TestFetchDownloadErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newDownloader(t).Fetch(context.Background(), server.URL+"/missing.mp3", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}
