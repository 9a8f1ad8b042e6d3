// Package groq transcribes audio with Groq's whisper-large-v3
// endpoint, which speaks the OpenAI audio API dialect.
package groq

import (
	"context"
	"errors"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"media2text/internal/app/api/provider"
	apperrors "media2text/internal/app/errors"
)

const (
	ProviderName   = "groq"
	defaultBaseURL = "https://api.groq.com/openai/v1"
	defaultModel   = "whisper-large-v3"
)

// Transcriber implements remote transcription using the Groq API.
type Transcriber struct {
	client *openai.Client
	model  string
}

// New creates a Groq transcriber from common provider config.
func New(cfg provider.Config) *Transcriber {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = defaultBaseURL
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	if cfg.Timeout > 0 {
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &Transcriber{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}
}

func (t *Transcriber) Name() string {
	return ProviderName
}

// Transcribe uploads the audio file and returns the transcript text.
// Like OpenAI, Groq auto-detects when no language hint is sent, so
// the "auto" sentinel drops the field.
func (t *Transcriber) Transcribe(ctx context.Context, req provider.Request) (*provider.Response, error) {
	audioReq := openai.AudioRequest{
		Model:    t.model,
		FilePath: req.AudioPath,
	}
	if req.Language != "" && req.Language != provider.LanguageAuto {
		audioReq.Language = req.Language
	}

	start := time.Now()
	resp, err := t.client.CreateTranscription(ctx, audioReq)
	if err != nil {
		return nil, classifyError(err)
	}

	return &provider.Response{
		Text:    resp.Text,
		Elapsed: time.Since(start),
	}, nil
}

func classifyError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return provider.ClassifyHTTPStatus(apiErr.HTTPStatusCode, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return provider.ClassifyHTTPStatus(reqErr.HTTPStatusCode, err)
	}
	return apperrors.Wrap(apperrors.ErrProviderNetwork, err)
}
