package voice

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Cleaner periodically deletes generated audio files once they are
// older than the TTL, so recordings of replies never linger on disk.
type Cleaner struct {
	dir      string
	ttl      time.Duration
	interval time.Duration
}

// NewCleaner creates a cleaner for the given audio directory.
func NewCleaner(dir string, ttl, interval time.Duration) *Cleaner {
	return &Cleaner{dir: dir, ttl: ttl, interval: interval}
}

// Run sweeps the audio directory until ctx is cancelled. The first
// sweep happens immediately.
func (c *Cleaner) Run(ctx context.Context) error {
	slog.Info("starting audio cleanup", "dir", c.dir, "ttl", c.ttl, "interval", c.interval)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.sweep(time.Now())

	for {
		select {
		case <-ctx.Done():
			slog.Info("audio cleanup shutting down")
			return ctx.Err()
		case now := <-ticker.C:
			c.sweep(now)
		}
	}
}

// sweep deletes mp3 files whose modification time is older than the
// TTL and returns how many were removed.
func (c *Cleaner) sweep(now time.Time) int {
	cutoff := now.Add(-c.ttl)

	paths, err := filepath.Glob(filepath.Join(c.dir, "*.mp3"))
	if err != nil {
		slog.Error("audio cleanup glob failed", "error", err)
		return 0
	}

	removed := 0
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			slog.Warn("audio cleanup stat failed", "file", path, "error", err)
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(path); err != nil {
			slog.Warn("audio cleanup delete failed", "file", path, "error", err)
			continue
		}
		slog.Debug("deleted old audio file", "file", filepath.Base(path))
		removed++
	}

	if removed > 0 {
		slog.Info("audio cleanup complete", "removed", removed)
	}

	return removed
}
