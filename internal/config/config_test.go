package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env and restore after test
	origEnv := os.Environ()
	t.Cleanup(func() {
		os.Clearenv()
		for _, e := range origEnv {
			for i := 0; i < len(e); i++ {
				if e[i] == '=' {
					os.Setenv(e[:i], e[i+1:])
					break
				}
			}
		}
	})

	t.Run("defaults", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("OPENAI_KEY_FILE", filepath.Join(t.TempDir(), "missing.env"))
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, ":8000", cfg.ListenAddr)
		assert.Equal(t, "gpt-5-mini", cfg.ChatModel)
		assert.Equal(t, "gpt-4o-mini-tts", cfg.TTSModel)
		assert.Equal(t, "nova", cfg.TTSVoice)
		assert.Equal(t, 0.9, cfg.TTSSpeed)
		assert.Equal(t, "whisper-1", cfg.TranscribeModel)
		assert.Equal(t, "friendly", cfg.DefaultMode)
		assert.Equal(t, "audio", cfg.AudioDir)
		assert.Equal(t, "data/zeldachat.db", cfg.DatabasePath)
		assert.Equal(t, 5*time.Minute, cfg.AudioTTL)
		assert.Equal(t, time.Minute, cfg.CleanupInterval)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("custom values", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("LISTEN_ADDR", ":9000")
		os.Setenv("OPENAI_API_KEY", "sk-test")
		os.Setenv("AUDIO_TTL", "1h")
		os.Setenv("TTS_SPEED", "1.25")
		os.Setenv("DEFAULT_MODE", "therapist")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, ":9000", cfg.ListenAddr)
		assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
		assert.Equal(t, time.Hour, cfg.AudioTTL)
		assert.Equal(t, 1.25, cfg.TTSSpeed)
		assert.Equal(t, "therapist", cfg.DefaultMode)
	})

	t.Run("key file fallback", func(t *testing.T) {
		os.Clearenv()
		keyFile := filepath.Join(t.TempDir(), "zelda_key.env")
		require.NoError(t, os.WriteFile(keyFile, []byte("sk-from-file\n"), 0600))
		os.Setenv("OPENAI_KEY_FILE", keyFile)

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "sk-from-file", cfg.OpenAIAPIKey)
	})

	t.Run("env var wins over key file", func(t *testing.T) {
		os.Clearenv()
		keyFile := filepath.Join(t.TempDir(), "zelda_key.env")
		require.NoError(t, os.WriteFile(keyFile, []byte("sk-from-file"), 0600))
		os.Setenv("OPENAI_KEY_FILE", keyFile)
		os.Setenv("OPENAI_API_KEY", "sk-from-env")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "sk-from-env", cfg.OpenAIAPIKey)
	})

	t.Run("invalid duration", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("AUDIO_TTL", "invalid")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("invalid speed", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("TTS_SPEED", "fast")

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	t.Run("serve requires api key", func(t *testing.T) {
		cfg := &Config{
			ListenAddr:   ":8000",
			AudioDir:     "audio",
			DatabasePath: "data/zeldachat.db",
		}
		err := cfg.ValidateForServe()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "OPENAI_API_KEY")
	})

	t.Run("serve passes with key", func(t *testing.T) {
		cfg := &Config{
			ListenAddr:   ":8000",
			OpenAIAPIKey: "sk-test",
			AudioDir:     "audio",
			DatabasePath: "data/zeldachat.db",
		}
		assert.NoError(t, cfg.ValidateForServe())
	})
}
