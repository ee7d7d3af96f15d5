package prosody

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// Flush thresholds (in runes) for grouping sentences into lines.
	upbeatLineLimit  = 80
	neutralLineLimit = 100
)

// leadingName matches a capitalized name at the start of a sentence,
// e.g. "John, ..." or "John ...". The final group deliberately keeps
// any punctuation so nothing is lost when the sentence is rebuilt.
var leadingName = regexp.MustCompile(`^([A-Z][a-z]{1,20})([, ]+)(.*)$`)

var spaceBeforePeriod = regexp.MustCompile(`\s+\.`)

// Words that mark an emotionally loaded sentence in the sympathetic
// and bummed branches.
var loadedWords = []string{"sorry", "hard", "tough", "understand", "alone", "worried"}

// splitSentences breaks text on ., ? and ! keeping the delimiter
// attached to its sentence. A trailing unterminated fragment becomes
// the final sentence. This is a plain punctuation scan, not a real
// sentence boundary detector; decimals and abbreviations are not
// special-cased.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	for _, r := range text {
		current.WriteRune(r)
		if r == '.' || r == '?' || r == '!' {
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}

	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}

	if len(sentences) == 0 {
		return []string{strings.TrimSpace(text)}
	}

	return sentences
}

// softenLeadingName inserts a pause after a name that opens the first
// sentence, turning "John, I hear you" into "John... I hear you".
// Only applied for the sympathetic tone; later sentences stay as-is.
func softenLeadingName(sentences []string, tone Tone) []string {
	if tone != ToneSympathetic || len(sentences) == 0 {
		return sentences
	}

	m := leadingName.FindStringSubmatch(sentences[0])
	if m == nil {
		return sentences
	}

	softened := make([]string, len(sentences))
	copy(softened, sentences)

	name := m[1]
	rest := strings.TrimLeftFunc(m[3], unicode.IsSpace)
	if rest != "" {
		softened[0] = name + "... " + rest
	} else {
		softened[0] = name + "..."
	}

	return softened
}

func hasLoadedWord(sentence string) bool {
	lower := strings.ToLower(sentence)
	for _, w := range loadedWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// packLines groups sentences into lines, flushing the running buffer
// once its joined length exceeds limit runes.
func packLines(sentences []string, limit int) []string {
	var lines []string
	var buffer []string

	for _, s := range sentences {
		buffer = append(buffer, s)
		joined := strings.Join(buffer, " ")
		if utf8.RuneCountInString(joined) > limit {
			lines = append(lines, joined)
			buffer = buffer[:0]
		}
	}
	if len(buffer) > 0 {
		lines = append(lines, strings.Join(buffer, " "))
	}

	return lines
}

// FormatForTTS reshapes reply text for speech synthesis: shorter
// lines, gentle ellipsis pauses, extra breaks around emotional
// sentences. The text shown to the user is never modified; only the
// string fed to the synthesizer comes from here.
func FormatForTTS(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return text
	}

	tone := Detect(text)
	sentences := splitSentences(text)
	sentences = softenLeadingName(sentences, tone)

	var lines []string

	switch tone {
	case ToneSympathetic, ToneBummed:
		// One sentence per line, blank line every two sentences for
		// breathing room.
		for i, s := range sentences {
			if hasLoadedWord(s) && !strings.HasSuffix(s, "...") {
				s += "..."
			}
			lines = append(lines, s)
			if i%2 == 1 {
				lines = append(lines, "")
			}
		}

	case ToneEncouraging, ToneHappy, ToneReassuring, TonePlayful, ToneExcited:
		// Group short phrases to keep momentum, then land the last
		// line with a soft lift.
		lines = packLines(sentences, upbeatLineLimit)
		if len(lines) > 0 {
			last := lines[len(lines)-1]
			switch tone {
			case ToneHappy, ToneExcited:
				if !strings.HasSuffix(last, "!") {
					last += "!"
				}
			default:
				if !strings.HasSuffix(last, "!") &&
					!strings.HasSuffix(last, "…") &&
					!strings.HasSuffix(last, "...") {
					last += "..."
				}
			}
			lines[len(lines)-1] = last
		}

	case ToneCaution:
		// Slower, more segmented delivery.
		for _, s := range sentences {
			lines = append(lines, s, "")
		}

	default:
		lines = packLines(sentences, neutralLineLimit)
	}

	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	out := text
	if len(lines) > 0 {
		out = strings.Join(lines, "\n\n")
	}

	// A single ellipsis glyph keeps the synthesizer from reading
	// "dot dot dot".
	out = strings.ReplaceAll(out, "...", "…")
	out = spaceBeforePeriod.ReplaceAllString(out, ".")

	return out
}
