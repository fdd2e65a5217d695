package analyzer

import "strings"

// Phrase is a contiguous run of words whose exact text recurs in the
// source sequence.
type Phrase struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

// repeatedPhrases finds two-word phrases that occur more than once.
//
// Each adjacent word pair is joined with a single space and counted as a
// non-overlapping substring of the whole space-joined word text. This is a
// textual count, not a token-window comparison: a pair like "کا نشہ" also
// matches inside a longer run wherever the joined spelling lines up, and
// the result is sensitive to exact spacing. Known limitation, kept because
// downstream reports and prior analyses assume these counts.
func repeatedPhrases(words []string) []Phrase {
	phrases := []Phrase{}
	if len(words) < 2 {
		return phrases
	}

	joined := strings.Join(words, " ")
	seen := make(map[string]struct{})

	for i := 0; i+1 < len(words); i++ {
		text := words[i] + " " + words[i+1]
		if _, ok := seen[text]; ok {
			continue
		}
		seen[text] = struct{}{}

		if count := strings.Count(joined, text); count > 1 {
			phrases = append(phrases, Phrase{Text: text, Count: count})
		}
	}

	return phrases
}
