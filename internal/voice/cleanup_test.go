package voice

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAudioFile(t *testing.T, dir, name string, age time.Duration) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("mp3"), 0644))
	mtime := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	return path
}

func TestCleaner_Sweep(t *testing.T) {
	t.Run("removes only expired mp3 files", func(t *testing.T) {
		dir := t.TempDir()
		old := writeAudioFile(t, dir, "old.mp3", 10*time.Minute)
		fresh := writeAudioFile(t, dir, "fresh.mp3", time.Second)
		other := writeAudioFile(t, dir, "keep.wav", 10*time.Minute)

		c := NewCleaner(dir, 5*time.Minute, time.Minute)
		removed := c.sweep(time.Now())

		assert.Equal(t, 1, removed)
		assert.NoFileExists(t, old)
		assert.FileExists(t, fresh)
		assert.FileExists(t, other)
	})

	t.Run("empty directory is fine", func(t *testing.T) {
		c := NewCleaner(t.TempDir(), 5*time.Minute, time.Minute)
		assert.Equal(t, 0, c.sweep(time.Now()))
	})

	t.Run("missing directory does not panic", func(t *testing.T) {
		c := NewCleaner(filepath.Join(t.TempDir(), "nope"), 5*time.Minute, time.Minute)
		assert.Equal(t, 0, c.sweep(time.Now()))
	})
}
