package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/zahid-digitalhumanities/urdu-computational-philology/internal/analyzer"
	"github.com/zahid-digitalhumanities/urdu-computational-philology/internal/lexicon"
	"github.com/zahid-digitalhumanities/urdu-computational-philology/internal/segmenter"
	"github.com/zahid-digitalhumanities/urdu-computational-philology/internal/textsource"
)

// JSONOutput is the machine-readable envelope for one analysis run.
type JSONOutput struct {
	Tokens      []segmenter.Token    `json:"tokens"`
	Analysis    *analyzer.Result     `json:"analysis,omitempty"`
	Annotations []lexicon.Annotation `json:"annotations,omitempty"`
}

// WriteJSON serializes the envelope with indentation to w.
func WriteJSON(w io.Writer, output JSONOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON serialization error: %w", err)
	}

	fmt.Fprintln(w, string(data))
	return nil
}

// WriteVerifyJSON serializes a verification report with indentation to w.
func WriteVerifyJSON(w io.Writer, report textsource.VerifyReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON serialization error: %w", err)
	}

	fmt.Fprintln(w, string(data))
	return nil
}
