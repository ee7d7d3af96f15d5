package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// HTTP server
	ListenAddr string

	// OpenAI API
	OpenAIAPIKey string
	KeyFile      string

	// Models
	ChatModel       string
	TTSModel        string
	TTSVoice        string
	TTSSpeed        float64
	TranscribeModel string

	// Persona
	DefaultMode string

	// Directories served by the HTTP surface
	AudioDir    string
	VideoDir    string
	FrontendDir string

	// Audio file lifecycle
	AudioTTL        time.Duration
	CleanupInterval time.Duration

	// Exchange log
	DatabasePath string

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables.
// It automatically loads .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		ListenAddr:      getEnv("LISTEN_ADDR", ":8000"),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		KeyFile:         getEnv("OPENAI_KEY_FILE", "zelda_key.env"),
		ChatModel:       getEnv("CHAT_MODEL", "gpt-5-mini"),
		TTSModel:        getEnv("TTS_MODEL", "gpt-4o-mini-tts"),
		TTSVoice:        getEnv("TTS_VOICE", "nova"),
		TranscribeModel: getEnv("TRANSCRIBE_MODEL", "whisper-1"),
		DefaultMode:     getEnv("DEFAULT_MODE", "friendly"),
		AudioDir:        getEnv("AUDIO_DIR", "audio"),
		VideoDir:        getEnv("VIDEO_DIR", "video"),
		FrontendDir:     getEnv("FRONTEND_DIR", "frontend"),
		DatabasePath:    getEnv("DATABASE_PATH", "data/zeldachat.db"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}

	// The original deployment kept the key on a single line in
	// zelda_key.env; fall back to that when the env var is unset.
	if cfg.OpenAIAPIKey == "" {
		cfg.OpenAIAPIKey = readKeyFile(cfg.KeyFile)
	}

	speed, err := strconv.ParseFloat(getEnv("TTS_SPEED", "0.9"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TTS_SPEED: %w", err)
	}
	cfg.TTSSpeed = speed

	cfg.AudioTTL, err = time.ParseDuration(getEnv("AUDIO_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid AUDIO_TTL: %w", err)
	}

	cfg.CleanupInterval, err = time.ParseDuration(getEnv("CLEANUP_INTERVAL", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CLEANUP_INTERVAL: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}
	return nil
}

// ValidateForSpeech checks configuration needed to call the chat,
// speech and transcription endpoints.
func (c *Config) ValidateForSpeech() error {
	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required (or put the key in %s)", c.KeyFile)
	}
	if c.AudioDir == "" {
		return fmt.Errorf("AUDIO_DIR is required")
	}
	return nil
}

// ValidateForServe checks all configuration needed for serve mode.
func (c *Config) ValidateForServe() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := c.ValidateForSpeech(); err != nil {
		return err
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("LISTEN_ADDR is required")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func readKeyFile(path string) string {
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
