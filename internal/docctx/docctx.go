// Package docctx turns supporting documents into plain text that can be
// forwarded as context for question generation. The rest of the system
// treats the extracted text as an opaque string.
package docctx

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Kind is the declared document format, derived from the file extension.
type Kind string

const (
	KindPDF        Kind = "pdf"
	KindWord       Kind = "word"
	KindPowerPoint Kind = "powerpoint"
	KindExcel      Kind = "excel"
	KindText       Kind = "text"
)

// MaxFileSize is the per-file size ceiling in bytes.
const MaxFileSize = 50 << 20

var kindByExt = map[string]Kind{
	".pdf":  KindPDF,
	".docx": KindWord,
	".pptx": KindPowerPoint,
	".xlsx": KindExcel,
	".txt":  KindText,
	".md":   KindText,
}

// DetectKind maps a file path to its document kind by extension.
func DetectKind(path string) (Kind, error) {
	ext := strings.ToLower(filepath.Ext(path))
	k, ok := kindByExt[ext]
	if !ok {
		return "", &UnsupportedFormatError{Path: path, Ext: ext}
	}
	return k, nil
}

// UnsupportedFormatError reports a file whose format is not recognized
// or has no registered extractor.
type UnsupportedFormatError struct {
	Path string
	Ext  string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format %q: %s", e.Ext, e.Path)
}

// FileTooLargeError reports a file over the size ceiling.
type FileTooLargeError struct {
	Path  string
	Size  int64
	Limit int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("file exceeds %dMB limit (%d bytes): %s", e.Limit>>20, e.Size, e.Path)
}

// Extractor pulls plain text out of one document format.
type Extractor interface {
	Extract(path string) (string, error)
}

// Processor extracts and combines text from supporting documents.
type Processor struct {
	extractors map[Kind]Extractor
	maxSize    int64
}

// NewProcessor returns a Processor with the plain-text extractor
// registered. Extractors for binary formats are registered by the
// caller via Register.
func NewProcessor() *Processor {
	p := &Processor{
		extractors: make(map[Kind]Extractor),
		maxSize:    MaxFileSize,
	}
	p.Register(KindText, PlainTextExtractor{})
	return p
}

// Register installs the extractor for a document kind, replacing any
// previous registration.
func (p *Processor) Register(kind Kind, e Extractor) {
	p.extractors[kind] = e
}

// Combine extracts text from every file and joins the results, each
// prefixed with a header naming its source file. Fails on the first
// unreadable, oversized, or unsupported file rather than returning
// partial context.
func (p *Processor) Combine(paths []string) (string, error) {
	var sections []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return "", fmt.Errorf("failed to read document: %w", err)
		}
		if info.Size() > p.maxSize {
			return "", &FileTooLargeError{Path: path, Size: info.Size(), Limit: p.maxSize}
		}

		kind, err := DetectKind(path)
		if err != nil {
			return "", err
		}
		ex, ok := p.extractors[kind]
		if !ok {
			return "", &UnsupportedFormatError{Path: path, Ext: strings.ToLower(filepath.Ext(path))}
		}

		content, err := ex.Extract(path)
		if err != nil {
			return "", fmt.Errorf("failed to extract %s: %w", filepath.Base(path), err)
		}
		sections = append(sections,
			fmt.Sprintf("=== Content from %s ===\n%s\n", filepath.Base(path), strings.TrimRight(content, "\n")))
	}
	return strings.Join(sections, "\n"), nil
}

// PlainTextExtractor reads a text file as-is.
type PlainTextExtractor struct{}

func (PlainTextExtractor) Extract(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
