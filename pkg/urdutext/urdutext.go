// Package urdutext is the public API of the Urdu computational philology
// toolkit.
//
// This package provides functions to:
//   - Segment Urdu text into word and punctuation tokens
//   - Compute word-frequency statistics and lexical richness (TTR)
//   - Detect repeated phrases in poetry
//   - Read corpus files with explicit encodings (UTF-8, UTF-16, CP1256, ISO-8859-6)
//   - Verify UTF-8 encoding of raw corpus bytes
//
// Example usage:
//
//	import "github.com/zahid-digitalhumanities/urdu-computational-philology/pkg/urdutext"
//
//	text, _ := urdutext.ReadFile("ghazal.txt", "utf-8")
//	tokens := urdutext.Segment(text, true, urdutext.DefaultBoundarySet())
//	result := urdutext.Analyze(tokens, 5)
//	fmt.Printf("TTR: %.3f\n", result.TypeTokenRatio)
package urdutext

import (
	"github.com/zahid-digitalhumanities/urdu-computational-philology/internal/analyzer"
	"github.com/zahid-digitalhumanities/urdu-computational-philology/internal/lexicon"
	"github.com/zahid-digitalhumanities/urdu-computational-philology/internal/pipeline"
	"github.com/zahid-digitalhumanities/urdu-computational-philology/internal/segmenter"
	"github.com/zahid-digitalhumanities/urdu-computational-philology/internal/textsource"
)

// Type aliases for public API
type (
	// Token represents one segmented unit, classified as word or punctuation
	Token = segmenter.Token

	// TokenClass represents the classification of a token
	TokenClass = segmenter.TokenClass

	// BoundarySet is the configurable set of punctuation code points that
	// terminate a token
	BoundarySet = segmenter.BoundarySet

	// Result is the aggregate outcome of a frequency analysis run
	Result = analyzer.Result

	// Entry is one ranked row of a frequency table
	Entry = analyzer.Entry

	// Phrase is a repeated multi-word run
	Phrase = analyzer.Phrase

	// Lexicon maps words to literary glosses
	Lexicon = lexicon.Lexicon

	// Annotation pairs a counted word with its gloss
	Annotation = lexicon.Annotation

	// VerifyReport holds the result of UTF-8 verification
	VerifyReport = textsource.VerifyReport

	// PipelineStats summarizes a cleaned corpus
	PipelineStats = pipeline.Stats
)

// Token class constants
const (
	ClassWord        = segmenter.ClassWord
	ClassPunctuation = segmenter.ClassPunctuation
)

// DefaultTopK is the default number of most-common entries reported.
const DefaultTopK = analyzer.DefaultTopK

// DefaultBoundarySet returns the standard Urdu sentence and clause
// punctuation marks.
func DefaultBoundarySet() BoundarySet {
	return segmenter.DefaultBoundarySet()
}

// NewBoundarySet builds a boundary set from the given code points.
func NewBoundarySet(runes ...rune) BoundarySet {
	return segmenter.NewBoundarySet(runes...)
}

// Segment tokenizes text. When retainPunctuation is true, boundary marks
// become their own single-character tokens; otherwise they are dropped.
func Segment(text string, retainPunctuation bool, set BoundarySet) []Token {
	return segmenter.Segment(text, retainPunctuation, set)
}

// Analyze computes frequency statistics over a token sequence. Punctuation
// tokens are filtered out before counting. topK values below 1 fall back to
// DefaultTopK.
func Analyze(tokens []Token, topK int) Result {
	return analyzer.Analyze(tokens, topK)
}

// Verify checks raw bytes for UTF-8 validity and Urdu script content.
func Verify(data []byte) VerifyReport {
	return textsource.Verify(data)
}

// Decode converts raw corpus bytes from the named encoding to UTF-8.
func Decode(data []byte, sourceEncoding string) (string, error) {
	return textsource.Decode(data, sourceEncoding)
}

// ReadFile loads a corpus file and decodes it from the named encoding.
func ReadFile(path, sourceEncoding string) (string, error) {
	return textsource.ReadFile(path, sourceEncoding)
}

// DefaultLexicon returns the built-in thematic gloss table for classical
// Urdu poetry.
func DefaultLexicon() Lexicon {
	return lexicon.Default()
}
