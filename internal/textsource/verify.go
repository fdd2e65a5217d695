package textsource

import (
	"unicode/utf8"
)

// Arabic Unicode block, which carries the Urdu alphabet.
const (
	arabicBlockLo = 0x0600
	arabicBlockHi = 0x06FF
)

// VerifyReport is the informational result of checking raw corpus bytes.
// An invalid report is not an error: the check exists to surface encoding
// problems before a corpus enters a processing run, nothing recovers from it.
type VerifyReport struct {
	Valid       bool    `json:"valid"`
	Bytes       int     `json:"length_bytes"`
	Chars       int     `json:"length_chars"`
	UrduChars   int     `json:"urdu_char_count"`
	UrduPercent float64 `json:"urdu_percentage"`
}

// Verify checks that data is well-formed UTF-8 and measures how much of it
// sits in the Arabic block, a quick signal that a file really holds Urdu
// text rather than mojibake from a wrong codepage.
func Verify(data []byte) VerifyReport {
	report := VerifyReport{
		Valid: utf8.Valid(data),
		Bytes: len(data),
	}
	if !report.Valid {
		return report
	}

	for _, r := range string(data) {
		report.Chars++
		if r >= arabicBlockLo && r <= arabicBlockHi {
			report.UrduChars++
		}
	}
	if report.Chars > 0 {
		report.UrduPercent = float64(report.UrduChars) / float64(report.Chars) * 100
	}

	return report
}

// VerifyString is Verify over an already-decoded string.
func VerifyString(text string) VerifyReport {
	return Verify([]byte(text))
}
