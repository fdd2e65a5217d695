// Package textsource reads and writes Urdu corpus files with explicit
// character encodings. Decoding happens at this boundary only: everything
// past it works on plain UTF-8 strings.
package textsource

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encodings this toolkit accepts for corpus input. Output is always UTF-8.
const (
	EncodingUTF8     = "utf-8"
	EncodingUTF16    = "utf-16"
	EncodingCP1256   = "cp1256"     // Windows Arabic
	EncodingISO88596 = "iso-8859-6" // ISO Arabic
)

// UTF-8 BOM (Byte Order Mark) sequence
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// stripUTF8BOM removes the UTF-8 BOM if present at the beginning of the data,
// covering files saved as "utf-8-sig".
func stripUTF8BOM(data []byte) []byte {
	if len(data) >= 3 && bytes.Equal(data[:3], utf8BOM) {
		return data[3:]
	}
	return data
}

// Decode converts raw corpus bytes from the named source encoding to a
// UTF-8 string. The UTF-8 BOM is stripped automatically; UTF-16 input is
// decoded per its own BOM, defaulting to little-endian when absent.
func Decode(data []byte, sourceEncoding string) (string, error) {
	var decoder *encoding.Decoder

	switch strings.ToLower(sourceEncoding) {
	case EncodingUTF8, "utf8", "":
		return string(stripUTF8BOM(data)), nil
	case EncodingUTF16, "utf16":
		decoder = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	case EncodingCP1256, "windows-1256":
		decoder = charmap.Windows1256.NewDecoder()
	case EncodingISO88596:
		decoder = charmap.ISO8859_6.NewDecoder()
	default:
		return "", fmt.Errorf("unsupported encoding: %s", sourceEncoding)
	}

	reader := transform.NewReader(bytes.NewReader(data), decoder)
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("encoding conversion error: %w", err)
	}

	return string(stripUTF8BOM(decoded)), nil
}

// FileStats measures a corpus file as read: raw size on disk, decoded
// character count, and line count.
type FileStats struct {
	Bytes int `json:"bytes"`
	Chars int `json:"chars"`
	Lines int `json:"lines"`
}

// ReadFile loads a corpus file and decodes it from the named encoding.
func ReadFile(path, sourceEncoding string) (string, error) {
	text, _, err := ReadFileStats(path, sourceEncoding)
	return text, err
}

// ReadFileStats is ReadFile plus the file statistics the reporting layer
// shows alongside corpus content. Lines counts newline-separated segments
// of the decoded text; an empty file has zero lines.
func ReadFileStats(path, sourceEncoding string) (string, FileStats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", FileStats{}, fmt.Errorf("reading %s: %w", path, err)
	}

	text, err := Decode(data, sourceEncoding)
	if err != nil {
		return "", FileStats{}, fmt.Errorf("decoding %s: %w", path, err)
	}

	stats := FileStats{
		Bytes: len(data),
		Chars: utf8.RuneCountInString(text),
	}
	if text != "" {
		stats.Lines = strings.Count(text, "\n") + 1
	}

	return text, stats, nil
}

// WriteFile writes text to path as UTF-8, the interchange encoding for
// every artifact this toolkit produces.
func WriteFile(path, text string) error {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
