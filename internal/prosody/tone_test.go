package prosody

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	t.Run("empty input is neutral", func(t *testing.T) {
		assert.Equal(t, ToneNeutral, Detect(""))
	})

	t.Run("no keyword is neutral", func(t *testing.T) {
		assert.Equal(t, ToneNeutral, Detect("The meeting is at three o'clock."))
	})

	t.Run("matching is case insensitive", func(t *testing.T) {
		assert.Equal(t, ToneSympathetic, Detect("I'M SORRY to hear that"))
	})

	t.Run("one tone per group", func(t *testing.T) {
		tests := []struct {
			text string
			want Tone
		}{
			{"I'm sorry you're dealing with this.", ToneSympathetic},
			{"Ugh, that sucks.", ToneBummed},
			{"Don't worry, we'll figure it out.", ToneReassuring},
			{"Keep going, you're almost there.", ToneEncouraging},
			{"Congratulations, that's fantastic!", ToneHappy},
			{"haha that's hilarious, just kidding", TonePlayful},
			{"I wonder what happens next.", ToneIntrigued},
			{"Be careful with that setting.", ToneCaution},
			{"This is huge news!", ToneExcited},
		}

		for _, tt := range tests {
			t.Run(string(tt.want), func(t *testing.T) {
				assert.Equal(t, tt.want, Detect(tt.text))
			})
		}
	})

	t.Run("earlier groups shadow later ones", func(t *testing.T) {
		// Contains both a sympathetic phrase and a happy phrase; the
		// sympathetic group is checked first and must win.
		assert.Equal(t, ToneSympathetic, Detect("I'm sorry, that's great news"))

		// Bummed beats reassuring for the same reason.
		assert.Equal(t, ToneBummed, Detect("That sucks, but don't worry."))
	})

	t.Run("both apostrophe glyphs match", func(t *testing.T) {
		assert.Equal(t, ToneReassuring, Detect("it's okay to rest"))
		assert.Equal(t, ToneReassuring, Detect("it’s okay to rest"))
		assert.Equal(t, ToneCaution, Detect("I’d strongly recommend a backup."))
		assert.Equal(t, ToneCaution, Detect("I'd strongly recommend a backup."))
	})

	t.Run("tone strings are the avatar contract", func(t *testing.T) {
		want := []string{
			"excited", "neutral", "happy", "sympathetic", "bummed",
			"reassuring", "encouraging", "playful", "intrigued", "caution",
		}
		got := []string{
			ToneExcited.String(), ToneNeutral.String(), ToneHappy.String(),
			ToneSympathetic.String(), ToneBummed.String(), ToneReassuring.String(),
			ToneEncouraging.String(), TonePlayful.String(), ToneIntrigued.String(),
			ToneCaution.String(),
		}
		assert.Equal(t, want, got)
	})
}
