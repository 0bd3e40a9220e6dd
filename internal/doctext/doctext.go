// Package doctext derives plain text and positioned word tokens from
// receipt documents. PDFs are read through their embedded text layer and
// fall back to rasterize-and-OCR when none is present; raster images are
// preprocessed and OCRed directly. External binaries (pdftotext, pdftoppm,
// tesseract, magick) do the heavy lifting through the Runner interface.
package doctext

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/receiptiq/receiptiq/constants"
)

// ErrUnreadableDocument is returned when no text can be derived from a
// document by any path. Extraction aborts before any LLM call.
var ErrUnreadableDocument = errors.New("no text could be extracted from the document")

// MinWordConfidence drops OCR tokens the engine is not sure about.
// Tesseract reports word confidence in 0..100.
const MinWordConfidence = 30

type Config struct {
	Pdftotext string // binary name or absolute path; if empty -> "pdftotext"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"
	Magick    string // binary name or absolute path; if empty -> "magick"

	TesseractLang string // default "eng"
	TessdataDir   string
	DPI           int // rasterization DPI for scanned PDFs, default 300
	MaxPages      int // 0 = no limit
}

// Token is one positioned word. Coordinates are page-relative: PDF points
// for text-layer extraction, pixels for OCR.
type Token struct {
	Text       string  `json:"text"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Page       int     `json:"page"`
	Confidence float64 `json:"confidence,omitempty"`
}

// Document is the combined output: concatenated plain text with form-feed
// page breaks, plus the flat token list.
type Document struct {
	Text     string
	Tokens   []Token
	Pages    int
	Method   string // "pdf-text" | "pdf-ocr" | "image-ocr"
	Duration time.Duration
	Warnings []string
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftotext == "" {
		cfg.Pdftotext = "pdftotext"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Magick == "" {
		cfg.Magick = "magick"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// WithRunner swaps the command runner. Tests use this to stub binaries.
func (e *Extractor) WithRunner(r Runner) *Extractor {
	e.runner = r
	return e
}

// Extract picks a strategy based on the declared mime type, falling back to
// the file extension when the mime type is unknown.
func (e *Extractor) Extract(ctx context.Context, path, mimeType string) (Document, error) {
	start := time.Now()
	format := constants.MapMimeToFormat(mimeType)
	if format == "" {
		format = constants.MapExtToFormat(constants.NormalizeExt(filepath.Ext(path)))
	}
	e.logger.Debug("doctext.extract.start", "path", path, "format", format)

	var doc Document
	var err error
	switch format {
	case constants.PDF:
		doc, err = e.extractPDF(ctx, path)
	case constants.IMAGE:
		doc, err = e.extractImage(ctx, path)
	default:
		return Document{}, fmt.Errorf("unsupported document format: %q", mimeType)
	}
	doc.Duration = time.Since(start)
	if err != nil {
		return doc, err
	}
	if len(doc.Tokens) == 0 && doc.Text == "" {
		return doc, ErrUnreadableDocument
	}
	e.logger.Info("doctext.extract.done",
		"path", path,
		"method", doc.Method,
		"pages", doc.Pages,
		"tokens", len(doc.Tokens),
		"elapsed_ms", doc.Duration.Milliseconds(),
	)
	return doc, nil
}
