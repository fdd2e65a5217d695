package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/zahid-digitalhumanities/urdu-computational-philology/internal/segmenter"
)

// WriteTokenTable renders a token-by-token breakdown with positions and
// classes, one row per token in storage order.
func WriteTokenTable(w io.Writer, tokens []segmenter.Token) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTOKEN\tCLASS\tPOS")
	for i, t := range tokens {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", i+1, t.Text, t.Class, t.Pos)
	}
	tw.Flush()

	words, punctuation := segmenter.CountByClass(tokens)
	fmt.Fprintf(w, "\nTotal tokens: %d (words: %d, punctuation: %d)\n",
		len(tokens), words, punctuation)
}

// WriteTokenList renders tokens on a single line, quoted, in storage order.
func WriteTokenList(w io.Writer, tokens []segmenter.Token) {
	for i, t := range tokens {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprintf(w, "%q", t.Text)
	}
	fmt.Fprintln(w)
}
