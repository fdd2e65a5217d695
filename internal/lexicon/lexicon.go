// Package lexicon maps high-frequency Urdu words to short literary glosses
// for annotated frequency reports. The table is plain data, injected rather
// than hard-coded into the analysis, so a researcher can swap in their own
// interpretive framework without touching the counting code.
package lexicon

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zahid-digitalhumanities/urdu-computational-philology/internal/analyzer"
)

// Lexicon is a word → gloss lookup table.
type Lexicon map[string]string

// Annotation pairs a counted word with its gloss.
type Annotation struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
	Gloss string `json:"gloss"`
}

// Default returns the built-in thematic table for classical Urdu poetry.
func Default() Lexicon {
	return Lexicon{
		"ہے":    "Existential themes, being/identity - central to Urdu poetic discourse",
		"غم":    "Sorrow, melancholy - foundational in Ghalib's poetic universe",
		"دل":    "Heart, emotion - core of romantic and spiritual expression",
		"عشق":   "Love, passion - primary theme in Urdu ghazal tradition",
		"خدا":   "Divine, God - spiritual and metaphysical dimensions",
		"زندگی": "Life, existence - philosophical contemplation",
		"موت":   "Death, mortality - recurring memento mori theme",
		"آشنا":  "Beloved, familiar - central to love poetry",
		"سجدہ":  "Prostration, prayer - spiritual devotion",
		"جام":   "Wine cup - symbol of intoxication (literal and spiritual)",
	}
}

// Load reads a lexicon from a YAML file holding a flat word: gloss mapping.
func Load(path string) (Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lexicon %s: %w", path, err)
	}

	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("parsing lexicon %s: %w", path, err)
	}

	return lex, nil
}

// Annotate returns an annotation for every ranked entry present in the
// lexicon, keeping the ranking order of entries.
func (l Lexicon) Annotate(entries []analyzer.Entry) []Annotation {
	annotations := []Annotation{}
	for _, e := range entries {
		if gloss, ok := l[e.Word]; ok {
			annotations = append(annotations, Annotation{
				Word:  e.Word,
				Count: e.Count,
				Gloss: gloss,
			})
		}
	}
	return annotations
}
