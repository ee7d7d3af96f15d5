package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()

	s, err := NewStore(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	require.NoError(t, s.Migrate(ctx))
	return s
}

func TestMigrate(t *testing.T) {
	t.Run("is idempotent", func(t *testing.T) {
		s := newTestStore(t)
		require.NoError(t, s.Migrate(context.Background()))
	})
}

func TestRecordExchange(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	err := s.RecordExchange(ctx, Exchange{
		Mode:      "friendly",
		Message:   "I got the job!",
		Reply:     "Congratulations, that's fantastic!",
		Tone:      "happy",
		AudioFile: "/audio/abc.mp3",
	})
	require.NoError(t, err)

	count, err := s.CountExchanges(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	recent, err := s.RecentExchanges(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "friendly", recent[0].Mode)
	assert.Equal(t, "happy", recent[0].Tone)
	assert.Equal(t, "/audio/abc.mp3", recent[0].AudioFile)
	assert.False(t, recent[0].CreatedAt.IsZero())
}

func TestCountByTone(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for _, tone := range []string{"happy", "happy", "neutral"} {
		require.NoError(t, s.RecordExchange(ctx, Exchange{
			Mode: "friendly", Message: "m", Reply: "r", Tone: tone,
		}))
	}

	counts, err := s.CountByTone(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, ToneCount{Tone: "happy", Count: 2}, counts[0])
	assert.Equal(t, ToneCount{Tone: "neutral", Count: 1}, counts[1])
}

func TestRecentExchanges(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	for _, msg := range []string{"first", "second", "third"} {
		require.NoError(t, s.RecordExchange(ctx, Exchange{
			Mode: "friendly", Message: msg, Reply: "r", Tone: "neutral",
		}))
	}

	recent, err := s.RecentExchanges(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "third", recent[0].Message)
	assert.Equal(t, "second", recent[1].Message)
}
