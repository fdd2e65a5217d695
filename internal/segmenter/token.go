package segmenter

import (
	"encoding/json"
	"fmt"
)

type TokenClass int

const (
	ClassWord TokenClass = iota
	ClassPunctuation
)

func (c TokenClass) String() string {
	switch c {
	case ClassWord:
		return "word"
	case ClassPunctuation:
		return "punctuation"
	default:
		return fmt.Sprintf("TokenClass(%d)", c)
	}
}

func (c TokenClass) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *TokenClass) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	switch s {
	case "word":
		*c = ClassWord
	case "punctuation":
		*c = ClassPunctuation
	default:
		return fmt.Errorf("unknown TokenClass: %s", s)
	}

	return nil
}

// Token is a single unit of segmented text. Pos is the rune offset of the
// first character in the input string, in storage order. Display direction
// (Urdu renders right-to-left) is a rendering concern, not a data concern.
type Token struct {
	Text  string     `json:"text"`
	Class TokenClass `json:"class"`
	Pos   int        `json:"pos"`
}

func (t Token) String() string {
	switch t.Class {
	case ClassPunctuation:
		return "PUNCT: " + t.Text
	default:
		return "WORD: " + t.Text
	}
}

// Words returns only the word tokens, preserving order.
func Words(tokens []Token) []Token {
	words := make([]Token, 0, len(tokens))
	for _, t := range tokens {
		if t.Class == ClassWord {
			words = append(words, t)
		}
	}
	return words
}

// WordTexts returns the text of each word token, preserving order.
func WordTexts(tokens []Token) []string {
	texts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t.Class == ClassWord {
			texts = append(texts, t.Text)
		}
	}
	return texts
}

// CountByClass returns the number of word tokens and punctuation tokens.
func CountByClass(tokens []Token) (words, punctuation int) {
	for _, t := range tokens {
		if t.Class == ClassPunctuation {
			punctuation++
		} else {
			words++
		}
	}
	return words, punctuation
}
