// Package report renders segmentation and analysis results for humans:
// console summaries, token tables, plain-text report files and JSON. The
// analysis core never formats anything; every rendering decision lives here.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/zahid-digitalhumanities/urdu-computational-philology/internal/analyzer"
	"github.com/zahid-digitalhumanities/urdu-computational-philology/internal/lexicon"
	"github.com/zahid-digitalhumanities/urdu-computational-philology/internal/textsource"
)

const ruleWidth = 70

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	okColor     = color.New(color.FgGreen)
	badColor    = color.New(color.FgRed)
)

func rule(w io.Writer, c byte) {
	fmt.Fprintln(w, strings.Repeat(string(c), ruleWidth))
}

// WriteAnalysis renders the full analysis report: totals, lexical richness,
// the ranked frequency distribution, repeated phrases and any lexicon
// annotations. The same format goes to the console and to report files.
func WriteAnalysis(w io.Writer, res analyzer.Result, annotations []lexicon.Annotation) {
	rule(w, '=')
	headerColor.Fprintln(w, "URDU POETRY QUANTITATIVE ANALYSIS REPORT")
	rule(w, '=')
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Total words analyzed: %d\n", res.TotalWords)
	fmt.Fprintf(w, "Unique vocabulary: %d\n", res.UniqueWords)
	fmt.Fprintf(w, "Lexical richness (TTR): %.3f\n", res.TypeTokenRatio)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "WORD FREQUENCY DISTRIBUTION:")
	rule(w, '-')
	for _, e := range res.Ranked {
		fmt.Fprintf(w, "  %-15s %3d\n", e.Word, e.Count)
	}

	if len(res.MostCommon) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "MOST FREQUENT WORDS (Top %d):\n", len(res.MostCommon))
		rule(w, '-')
		for _, e := range res.MostCommon {
			fmt.Fprintf(w, "  %q: %dx\n", e.Word, e.Count)
		}
	}

	if len(res.RepeatedPhrases) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "REPEATED PHRASES:")
		rule(w, '-')
		for _, p := range res.RepeatedPhrases {
			fmt.Fprintf(w, "  %q: %d times\n", p.Text, p.Count)
		}
	}

	if len(annotations) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "FREQUENCY ANALYSIS WITH LITERARY INTERPRETATION")
		rule(w, '-')
		fmt.Fprintf(w, "%-10s %-10s %s\n", "Word", "Count", "Literary Significance")
		for _, a := range annotations {
			fmt.Fprintf(w, "%-10s %-10d %s\n", a.Word, a.Count, a.Gloss)
		}
	}
}

// WriteAnalysisFile writes the analysis report to a UTF-8 file, without
// console colors.
func WriteAnalysisFile(path string, res analyzer.Result, annotations []lexicon.Annotation) error {
	var sb strings.Builder

	noColor := color.NoColor
	color.NoColor = true
	WriteAnalysis(&sb, res, annotations)
	color.NoColor = noColor

	return textsource.WriteFile(path, sb.String())
}

// WriteVerify renders a verification report in the layout of the original
// corpus intake checklist.
func WriteVerify(w io.Writer, report textsource.VerifyReport) {
	rule(w, '=')
	headerColor.Fprintln(w, "URDU TEXT VERIFICATION REPORT")
	rule(w, '=')

	if report.Valid {
		okColor.Fprintln(w, "Encoding: valid UTF-8")
	} else {
		badColor.Fprintln(w, "Encoding: INVALID UTF-8")
	}
	fmt.Fprintf(w, "Bytes: %d\n", report.Bytes)
	if report.Valid {
		fmt.Fprintf(w, "Characters: %d\n", report.Chars)
		fmt.Fprintf(w, "Urdu characters: %d (%.1f%%)\n", report.UrduChars, report.UrduPercent)
	}
	rule(w, '=')
}
