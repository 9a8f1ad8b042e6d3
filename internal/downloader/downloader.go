// Package downloader fetches remote media so the transcription
// pipeline only ever sees local files. Direct media URLs are saved as
// is; web pages are scraped for their Open Graph audio or video tag.
package downloader

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"media2text/internal/app/media"
)

const defaultTimeout = 10 * time.Minute

// Fetched describes a media file pulled down from a URL.
type Fetched struct {
	FilePath  string
	Title     string
	SourceURL string
}

// Downloader resolves URLs into local media files.
type Downloader struct {
	client *http.Client
	log    *zap.SugaredLogger
}

func New(log *zap.SugaredLogger) *Downloader {
	return &Downloader{
		client: &http.Client{Timeout: defaultTimeout},
		log:    log,
	}
}

// NewWithClient is used by tests to point at a local server.
func NewWithClient(log *zap.SugaredLogger, client *http.Client) *Downloader {
	return &Downloader{client: client, log: log}
}

// Fetch downloads the media behind rawURL into dir. A URL whose path
// ends in a known media extension is downloaded directly; anything
// else is treated as an HTML page and scraped for og:audio, og:video
// and og:title meta tags.
func (d *Downloader) Fetch(ctx context.Context, rawURL, dir string) (*Fetched, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, fmt.Errorf("invalid URL: %s", rawURL)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create download directory: %w", err)
	}

	if media.IsSupported(parsed.Path) {
		name := path.Base(parsed.Path)
		filePath := filepath.Join(dir, sanitizeName(name))
		d.log.Infow("downloading media file", "url", rawURL, "dest", filePath)
		if err := d.downloadFile(ctx, rawURL, filePath); err != nil {
			return nil, err
		}
		return &Fetched{FilePath: filePath, Title: name, SourceURL: rawURL}, nil
	}

	mediaURL, title, err := d.scrapePage(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	ext := mediaExtension(mediaURL)
	if ext == "" {
		return nil, fmt.Errorf("page media url has unsupported extension: %s", mediaURL)
	}
	if title == "" {
		title = strings.TrimSuffix(path.Base(mediaURL), ext)
	}

	filePath := filepath.Join(dir, sanitizeName(title)+ext)
	d.log.Infow("downloading page media", "page", rawURL, "media", mediaURL, "dest", filePath)
	if err := d.downloadFile(ctx, mediaURL, filePath); err != nil {
		return nil, err
	}
	return &Fetched{FilePath: filePath, Title: title, SourceURL: rawURL}, nil
}

// scrapePage extracts the media URL and title from a page's Open
// Graph meta tags. og:audio wins over og:video when both are present.
func (d *Downloader) scrapePage(ctx context.Context, pageURL string) (mediaURL, title string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", "", err
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("fetch page: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("parse page: %w", err)
	}

	for _, property := range []string{"og:audio", "og:video"} {
		tag := doc.Find(fmt.Sprintf(`meta[property=%q]`, property)).First()
		if content, ok := tag.Attr("content"); ok && content != "" {
			mediaURL = content
			break
		}
	}
	if mediaURL == "" {
		return "", "", fmt.Errorf("page has no og:audio or og:video tag: %s", pageURL)
	}

	title, _ = doc.Find(`meta[property="og:title"]`).First().Attr("content")
	return mediaURL, title, nil
}

func (d *Downloader) downloadFile(ctx context.Context, fileURL, filePath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return err
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("download %s: %w", fileURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download %s: status %d", fileURL, resp.StatusCode)
	}

	// Skip the transfer when a previous run already downloaded the
	// whole file.
	if info, err := os.Stat(filePath); err == nil && resp.ContentLength > 0 && info.Size() == resp.ContentLength {
		d.log.Infow("file already downloaded, skipping", "dest", filePath, "size", info.Size())
		return nil
	}

	out, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		os.Remove(filePath)
		return fmt.Errorf("write %s: %w", filePath, err)
	}
	return nil
}

func mediaExtension(mediaURL string) string {
	parsed, err := url.Parse(mediaURL)
	if err != nil {
		return ""
	}
	if !media.IsSupported(parsed.Path) {
		return ""
	}
	return strings.ToLower(path.Ext(parsed.Path))
}

func sanitizeName(name string) string {
	replacer := strings.NewReplacer("/", "-", "\\", "-", ":", "-", "*", "-", "?", "-", "\"", "-", "<", "-", ">", "-", "|", "-")
	return strings.TrimSpace(replacer.Replace(name))
}
