// Package analyzer computes word-frequency statistics over a token
// sequence: frequency table, type-token ratio, deterministic top-K ranking
// and repeated-phrase detection.
package analyzer

import (
	"sort"

	"github.com/zahid-digitalhumanities/urdu-computational-philology/internal/segmenter"
)

// DefaultTopK is the number of entries reported in MostCommon when the
// caller does not ask for a specific K.
const DefaultTopK = 5

// Entry is one ranked row of the frequency table.
type Entry struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Result is the aggregate outcome of one analysis run. All fields are
// computed once and never mutated afterwards; the caller owns the value.
type Result struct {
	Tokens          []segmenter.Token `json:"tokens"`
	TotalWords      int               `json:"total_words"`
	UniqueWords     int               `json:"unique_words"`
	Frequencies     map[string]int    `json:"frequencies"`
	TypeTokenRatio  float64           `json:"type_token_ratio"`
	Ranked          []Entry           `json:"ranked"`
	MostCommon      []Entry           `json:"most_common_words"`
	RepeatedPhrases []Phrase          `json:"repeated_phrases"`
}

// Analyze builds the frequency table for the word tokens in tokens and
// derives the lexical statistics. Punctuation tokens are filtered out
// before counting and never appear as frequency keys. Counting is exact
// text match, case-sensitive, with no normalization.
//
// Ranking is an explicit stable sort on (count descending, first-occurrence
// index ascending), so the top-K output is reproducible across runs. topK
// values below 1 fall back to DefaultTopK.
func Analyze(tokens []segmenter.Token, topK int) Result {
	if topK < 1 {
		topK = DefaultTopK
	}

	words := segmenter.WordTexts(tokens)

	frequencies := make(map[string]int, len(words))
	firstSeen := make(map[string]int, len(words))
	for i, w := range words {
		if _, ok := frequencies[w]; !ok {
			firstSeen[w] = i
		}
		frequencies[w]++
	}

	result := Result{
		Tokens:          tokens,
		TotalWords:      len(words),
		UniqueWords:     len(frequencies),
		Frequencies:     frequencies,
		MostCommon:      []Entry{},
		RepeatedPhrases: repeatedPhrases(words),
	}

	if result.TotalWords > 0 {
		result.TypeTokenRatio = float64(result.UniqueWords) / float64(result.TotalWords)
	}

	result.Ranked = Ranked(frequencies, firstSeen)
	if topK > len(result.Ranked) {
		topK = len(result.Ranked)
	}
	result.MostCommon = result.Ranked[:topK]

	return result
}

// Ranked flattens a frequency table into entries sorted by count descending,
// ties broken by the first-occurrence index ascending. Map iteration order
// never leaks into the output.
func Ranked(frequencies map[string]int, firstSeen map[string]int) []Entry {
	entries := make([]Entry, 0, len(frequencies))
	for word, count := range frequencies {
		entries = append(entries, Entry{Word: word, Count: count})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return firstSeen[entries[i].Word] < firstSeen[entries[j].Word]
	})

	return entries
}
