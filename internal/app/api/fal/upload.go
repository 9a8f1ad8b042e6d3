package fal

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	apperrors "media2text/internal/app/errors"
)

const defaultUploadURL = "https://tmpfiles.org/api/v1/upload"

// uploader parks a local file on tmpfiles.org and returns a direct
// download URL. Uploaded files are public for 60 minutes, then purged
// by the host.
type uploader struct {
	url    string
	client *http.Client
}

type uploadResponse struct {
	Data struct {
		URL string `json:"url"`
	} `json:"data"`
}

func newUploader(url string, client *http.Client) *uploader {
	if url == "" {
		url = defaultUploadURL
	}
	return &uploader{url: url, client: client}
}

func (u *uploader) Upload(ctx context.Context, filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.url, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.client.Do(req)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrProviderNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apperrors.Wrapf(apperrors.ErrProviderNetwork, "upload status %d", resp.StatusCode)
	}

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", apperrors.Wrapf(apperrors.ErrProviderNetwork, "parse upload response: %v", err)
	}
	if parsed.Data.URL == "" {
		return "", apperrors.Wrapf(apperrors.ErrProviderNetwork, "upload response has no url")
	}

	// The API answers with a landing-page URL; the direct file lives
	// under /dl/.
	return strings.Replace(parsed.Data.URL, "https://tmpfiles.org/", "https://tmpfiles.org/dl/", 1), nil
}
