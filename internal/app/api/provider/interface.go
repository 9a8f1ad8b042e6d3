// Package provider defines the transcription capability every remote
// speech-to-text backend implements, plus the registry they install
// themselves into.
package provider

import (
	"context"
	"time"
)

// LanguageAuto asks the provider to detect the language itself. How
// the sentinel reaches the wire is provider-specific: OpenAI and Groq
// omit the hint entirely, Fal expects the literal string.
const LanguageAuto = "auto"

// Request carries one prepared audio file to a provider.
type Request struct {
	AudioPath string
	Language  string
}

// Response is the provider's transcript plus wall-clock latency.
type Response struct {
	Text    string
	Elapsed time.Duration
}

// Provider is the single capability all backends share.
type Provider interface {
	Name() string
	Transcribe(ctx context.Context, req Request) (*Response, error)
}

// Config is the common construction input for providers. Fields a
// given backend does not use are ignored.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}
