package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/zahid-digitalhumanities/urdu-computational-philology/internal/analyzer"
	"github.com/zahid-digitalhumanities/urdu-computational-philology/internal/lexicon"
	"github.com/zahid-digitalhumanities/urdu-computational-philology/internal/pipeline"
	"github.com/zahid-digitalhumanities/urdu-computational-philology/internal/report"
	"github.com/zahid-digitalhumanities/urdu-computational-philology/internal/segmenter"
	"github.com/zahid-digitalhumanities/urdu-computational-philology/internal/textsource"
)

var cli struct {
	Tokenize TokenizeCmd `cmd:"" help:"Segment Urdu text into word and punctuation tokens."`
	Analyze  AnalyzeCmd  `cmd:"" help:"Word frequency, lexical richness and repeated-phrase analysis."`
	Verify   VerifyCmd   `cmd:"" help:"Check raw file bytes for valid UTF-8 and Urdu script content."`
	Pipeline PipelineCmd `cmd:"" help:"Run the corpus cleaning pipeline over a poetry file."`
}

// readRaw reads raw bytes from the given file, or from stdin when path is
// empty and input is piped.
func readRaw(path string) ([]byte, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		return data, nil
	}

	stat, err := os.Stdin.Stat()
	if err != nil {
		return nil, fmt.Errorf("checking stdin: %w", err)
	}
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		return nil, fmt.Errorf("no input file and nothing piped on stdin")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return data, nil
}

// readText reads and decodes input text from a file or stdin.
func readText(path, encoding string) (string, error) {
	data, err := readRaw(path)
	if err != nil {
		return "", err
	}
	return textsource.Decode(data, encoding)
}

type TokenizeCmd struct {
	File      string `arg:"" optional:"" help:"Input file (stdin when omitted)." type:"existingfile"`
	Encoding  string `default:"utf-8" help:"Input encoding: utf-8, utf-16, cp1256, iso-8859-6."`
	DropPunct bool   `help:"Discard punctuation instead of emitting punctuation tokens."`
	JSON      bool   `short:"j" help:"Emit tokens as JSON."`
	Table     bool   `short:"t" help:"Render a token-by-token table."`
}

func (c *TokenizeCmd) Run() error {
	text, err := readText(c.File, c.Encoding)
	if err != nil {
		return err
	}

	tokens := segmenter.Segment(text, !c.DropPunct, segmenter.DefaultBoundarySet())

	switch {
	case c.JSON:
		return report.WriteJSON(os.Stdout, report.JSONOutput{Tokens: tokens})
	case c.Table:
		report.WriteTokenTable(os.Stdout, tokens)
	default:
		report.WriteTokenList(os.Stdout, tokens)
	}
	return nil
}

type AnalyzeCmd struct {
	File     string `arg:"" optional:"" help:"Input file (stdin when omitted)." type:"existingfile"`
	Encoding string `default:"utf-8" help:"Input encoding: utf-8, utf-16, cp1256, iso-8859-6."`
	Top      int    `default:"5" help:"Number of most frequent words to report."`
	JSON     bool   `short:"j" help:"Emit the analysis as JSON."`
	Report   string `placeholder:"PATH" help:"Also write the report to a UTF-8 file."`
	Lexicon  string `placeholder:"PATH" help:"YAML word:gloss table (built-in table when omitted)."`
}

func (c *AnalyzeCmd) Run() error {
	text, err := readText(c.File, c.Encoding)
	if err != nil {
		return err
	}

	lex := lexicon.Default()
	if c.Lexicon != "" {
		if lex, err = lexicon.Load(c.Lexicon); err != nil {
			return err
		}
	}

	tokens := segmenter.Segment(text, true, segmenter.DefaultBoundarySet())
	result := analyzer.Analyze(tokens, c.Top)
	annotations := lex.Annotate(result.Ranked)

	if c.JSON {
		return report.WriteJSON(os.Stdout, report.JSONOutput{
			Tokens:      tokens,
			Analysis:    &result,
			Annotations: annotations,
		})
	}

	report.WriteAnalysis(os.Stdout, result, annotations)

	if c.Report != "" {
		if err := report.WriteAnalysisFile(c.Report, result, annotations); err != nil {
			return err
		}
		fmt.Printf("\nAnalysis report saved to: %s\n", c.Report)
	}
	return nil
}

type VerifyCmd struct {
	File string `arg:"" optional:"" help:"Input file (stdin when omitted)." type:"existingfile"`
	JSON bool   `short:"j" help:"Emit the verification report as JSON."`
}

func (c *VerifyCmd) Run() error {
	data, err := readRaw(c.File)
	if err != nil {
		return err
	}

	vr := textsource.Verify(data)
	if c.JSON {
		return report.WriteVerifyJSON(os.Stdout, vr)
	}
	report.WriteVerify(os.Stdout, vr)
	return nil
}

type PipelineCmd struct {
	Input    string `arg:"" help:"Corpus file to process." type:"existingfile"`
	Output   string `arg:"" optional:"" default:"processed_corpus.txt" help:"Cleaned corpus destination."`
	Encoding string `default:"utf-8" help:"Input encoding: utf-8, utf-16, cp1256, iso-8859-6."`
	LogLevel string `default:"info" enum:"debug,info,warn,error" help:"Phase log verbosity."`
}

func (c *PipelineCmd) Run() error {
	level := slog.LevelInfo
	switch c.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	p := pipeline.New(c.Encoding, segmenter.DefaultBoundarySet(), log)
	_, stats, err := p.Run(c.Input, c.Output)
	if err != nil {
		return err
	}

	fmt.Printf("Total lines: %d\n", stats.TotalLines)
	fmt.Printf("Total words: %d\n", stats.TotalWords)
	fmt.Printf("Unique words: %d\n", stats.UniqueWords)
	fmt.Printf("Average line length: %.1f characters\n", stats.AvgLineLength)
	fmt.Printf("Cleaned corpus saved to: %s\n", c.Output)
	return nil
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("urduscan"),
		kong.Description("Segmentation and quantitative analysis of Urdu poetry corpora."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
