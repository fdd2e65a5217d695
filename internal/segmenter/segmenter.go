// Package segmenter splits Urdu text into word and punctuation tokens.
//
// Segmentation is a single left-to-right rune scan: whitespace always ends
// the current word, and any code point in the boundary set ends the current
// word and is either kept as its own punctuation token or dropped. Any
// Unicode input is valid; there is no failure mode, only an empty result
// for empty input.
package segmenter

import (
	"unicode"
)

// Segment tokenizes text against the given boundary set.
//
// When retainPunctuation is true, each boundary character is emitted as a
// single-rune punctuation token at the position it occurs. When false, both
// whitespace and boundary punctuation are discarded and only the words
// between them remain. Consecutive or leading/trailing boundary characters
// never produce empty tokens.
func Segment(text string, retainPunctuation bool, set BoundarySet) []Token {
	var tokens []Token

	start := -1 // rune offset of the word in progress, -1 when none
	var word []rune

	flush := func() {
		if len(word) > 0 {
			tokens = append(tokens, Token{
				Text:  string(word),
				Class: ClassWord,
				Pos:   start,
			})
			word = word[:0]
		}
		start = -1
	}

	pos := 0
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			flush()
		case set.Contains(r):
			flush()
			if retainPunctuation {
				tokens = append(tokens, Token{
					Text:  string(r),
					Class: ClassPunctuation,
					Pos:   pos,
				})
			}
		default:
			if start < 0 {
				start = pos
			}
			word = append(word, r)
		}
		pos++
	}
	flush()

	return tokens
}

// SegmentWords is Segment with punctuation dropped, the form the frequency
// analyzer consumes.
func SegmentWords(text string, set BoundarySet) []Token {
	return Segment(text, false, set)
}
