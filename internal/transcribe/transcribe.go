package transcribe

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Transcriber converts uploaded audio into text via the Whisper API.
type Transcriber struct {
	api   *openai.Client
	model string
}

// Config holds configuration for the transcriber.
type Config struct {
	APIKey string
	Model  string
	// BaseURL overrides the API endpoint, used in tests.
	BaseURL string
}

// New creates a new transcriber.
func New(cfg Config) *Transcriber {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Transcriber{
		api:   openai.NewClientWithConfig(clientCfg),
		model: cfg.Model,
	}
}

// Transcribe returns the text spoken in audio. The filename carries
// the container format (e.g. "speech.webm") so the API can decode it.
// Empty audio transcribes to an empty string without a network call.
func (t *Transcriber) Transcribe(ctx context.Context, filename string, audio []byte) (string, error) {
	if len(audio) == 0 {
		return "", nil
	}
	if filename == "" {
		filename = "speech.webm"
	}

	resp, err := t.api.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.model,
		FilePath: filename,
		Reader:   bytes.NewReader(audio),
	})
	if err != nil {
		return "", fmt.Errorf("create transcription: %w", err)
	}

	return strings.TrimSpace(resp.Text), nil
}
