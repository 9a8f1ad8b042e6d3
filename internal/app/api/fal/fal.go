// Package fal transcribes audio with the fal.ai wizper endpoint. The
// API only accepts URLs, so the audio is first parked on a short-lived
// public file host.
package fal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"media2text/internal/app/api/provider"
	apperrors "media2text/internal/app/errors"
)

const (
	ProviderName   = "fal"
	defaultBaseURL = "https://fal.run/fal-ai/wizper"
	defaultTimeout = 120 * time.Second
)

// Config holds Fal-specific settings on top of the common ones.
type Config struct {
	APIKey    string
	BaseURL   string
	UploadURL string
	Timeout   time.Duration
}

// Transcriber implements remote transcription using the Fal API.
type Transcriber struct {
	config   Config
	client   *http.Client
	uploader *uploader
}

type falRequest struct {
	AudioURL   string `json:"audio_url"`
	Task       string `json:"task"`
	Language   string `json:"language"`
	ChunkLevel string `json:"chunk_level"`
	Version    string `json:"version"`
}

type falResponse struct {
	Text string `json:"text"`
}

// New creates a Fal transcriber.
func New(cfg Config) *Transcriber {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}

	client := &http.Client{Timeout: cfg.Timeout}
	return &Transcriber{
		config:   cfg,
		client:   client,
		uploader: newUploader(cfg.UploadURL, client),
	}
}

func (t *Transcriber) Name() string {
	return ProviderName
}

// Transcribe uploads the audio to temporary storage, then asks Fal to
// transcribe it by URL. Unlike the other providers, "auto" is sent
// literally; the endpoint expects it spelled out.
func (t *Transcriber) Transcribe(ctx context.Context, req provider.Request) (*provider.Response, error) {
	audioURL, err := t.uploader.Upload(ctx, req.AudioPath)
	if err != nil {
		return nil, err
	}

	language := req.Language
	if language == "" {
		language = provider.LanguageAuto
	}

	payload, err := json.Marshal(falRequest{
		AudioURL:   audioURL,
		Task:       "transcribe",
		Language:   language,
		ChunkLevel: "segment",
		Version:    "3",
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.config.BaseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Key "+t.config.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrProviderNetwork, err)
	}
	defer resp.Body.Close()
	elapsed := time.Since(start)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, provider.ClassifyHTTPStatus(resp.StatusCode,
			fmt.Errorf("fal API status %d: %s", resp.StatusCode, body))
	}

	var result falResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrProviderNetwork, "parse fal response: %v", err)
	}

	return &provider.Response{
		Text:    result.Text,
		Elapsed: elapsed,
	}, nil
}
