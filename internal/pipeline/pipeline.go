// Package pipeline runs the end-to-end corpus preparation flow: ingest a
// poetry file with an explicit encoding, split and clean its lines, measure
// the vocabulary, and write the cleaned corpus back out as UTF-8.
package pipeline

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/zahid-digitalhumanities/urdu-computational-philology/internal/segmenter"
	"github.com/zahid-digitalhumanities/urdu-computational-philology/internal/textsource"
)

// Stats summarizes a cleaned corpus.
type Stats struct {
	TotalLines    int     `json:"total_lines"`
	TotalWords    int     `json:"total_words"`
	UniqueWords   int     `json:"unique_words"`
	AvgLineLength float64 `json:"avg_line_length"`
}

// Pipeline is one configured corpus run. The zero value is not usable;
// construct with New.
type Pipeline struct {
	encoding string
	boundary segmenter.BoundarySet
	log      *slog.Logger
}

// New builds a pipeline reading input in the given encoding and counting
// words against the given boundary set. A nil logger disables phase logging.
func New(encoding string, boundary segmenter.BoundarySet, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Pipeline{
		encoding: encoding,
		boundary: boundary,
		log:      log,
	}
}

// Run executes the five phases over inputPath and, when outputPath is
// non-empty, writes the cleaned corpus there. Returns the cleaned lines and
// the corpus statistics.
func (p *Pipeline) Run(inputPath, outputPath string) ([]string, Stats, error) {
	// 1. Ingest
	content, fileStats, err := textsource.ReadFileStats(inputPath, p.encoding)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("ingest: %w", err)
	}
	p.log.Info("ingest complete", "file", inputPath,
		"bytes", fileStats.Bytes, "chars", fileStats.Chars, "lines", fileStats.Lines)

	// 2. Process
	lines := strings.Split(content, "\n")
	p.log.Info("lines extracted", "count", len(lines))

	// 3. Clean
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	p.log.Info("lines cleaned", "kept", len(cleaned), "dropped", len(lines)-len(cleaned))

	// 4. Analyze
	stats := p.measure(cleaned)
	p.log.Info("corpus measured",
		"lines", stats.TotalLines,
		"words", stats.TotalWords,
		"unique_words", stats.UniqueWords)

	// 5. Output
	if outputPath != "" {
		if err := textsource.WriteFile(outputPath, strings.Join(cleaned, "\n")); err != nil {
			return nil, Stats{}, fmt.Errorf("output: %w", err)
		}
		p.log.Info("cleaned corpus written", "file", outputPath)
	}

	return cleaned, stats, nil
}

func (p *Pipeline) measure(lines []string) Stats {
	stats := Stats{TotalLines: len(lines)}

	unique := make(map[string]struct{})
	runeTotal := 0
	for _, line := range lines {
		runeTotal += utf8.RuneCountInString(line)
		for _, t := range segmenter.SegmentWords(line, p.boundary) {
			stats.TotalWords++
			unique[t.Text] = struct{}{}
		}
	}
	stats.UniqueWords = len(unique)

	if len(lines) > 0 {
		stats.AvgLineLength = float64(runeTotal) / float64(len(lines))
	}

	return stats
}
