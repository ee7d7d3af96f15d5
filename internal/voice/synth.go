package voice

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"

	"github.com/Madmartigan1/zeldachat/internal/prosody"
)

// Synthesizer turns reply text into an mp3 file on disk. The text is
// reshaped for pacing first; the caller's display text is untouched.
type Synthesizer struct {
	api   *openai.Client
	dir   string
	model string
	voice string
	speed float64
}

// Config holds configuration for the synthesizer.
type Config struct {
	APIKey   string
	AudioDir string
	Model    string
	Voice    string
	Speed    float64
	// BaseURL overrides the API endpoint, used in tests.
	BaseURL string
}

// New creates a new synthesizer and ensures the audio directory exists.
func New(cfg Config) (*Synthesizer, error) {
	if err := os.MkdirAll(cfg.AudioDir, 0755); err != nil {
		return nil, fmt.Errorf("create audio directory: %w", err)
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Synthesizer{
		api:   openai.NewClientWithConfig(clientCfg),
		dir:   cfg.AudioDir,
		model: cfg.Model,
		voice: cfg.Voice,
		speed: cfg.Speed,
	}, nil
}

// Synthesize generates speech for text and writes it under the audio
// directory. It returns a relative URL like "/audio/<name>.mp3" that
// matches the static mount on the HTTP server.
func (s *Synthesizer) Synthesize(ctx context.Context, text string) (string, error) {
	shaped := prosody.FormatForTTS(text)
	if shaped == "" {
		return "", fmt.Errorf("nothing to synthesize")
	}

	resp, err := s.api.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.SpeechModel(s.model),
		Input: shaped,
		Voice: openai.SpeechVoice(s.voice),
		Speed: s.speed,
	})
	if err != nil {
		return "", fmt.Errorf("create speech: %w", err)
	}
	defer resp.Close()

	id := uuid.New()
	name := hex.EncodeToString(id[:]) + ".mp3"
	path := filepath.Join(s.dir, name)

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create audio file: %w", err)
	}

	if _, err := io.Copy(out, resp); err != nil {
		out.Close()
		os.Remove(path)
		return "", fmt.Errorf("write audio file: %w", err)
	}

	if err := out.Close(); err != nil {
		return "", fmt.Errorf("close audio file: %w", err)
	}

	return "/audio/" + name, nil
}
