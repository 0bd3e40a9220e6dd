package doctext

import (
	"context"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// bboxDoc mirrors the XHTML emitted by pdftotext -bbox: one <page> per
// document page, one <word> per token with min/max corner coordinates.
type bboxDoc struct {
	XMLName xml.Name   `xml:"html"`
	Pages   []bboxPage `xml:"body>doc>page"`
}

type bboxPage struct {
	Width  float64    `xml:"width,attr"`
	Height float64    `xml:"height,attr"`
	Words  []bboxWord `xml:"word"`
}

type bboxWord struct {
	XMin float64 `xml:"xMin,attr"`
	YMin float64 `xml:"yMin,attr"`
	XMax float64 `xml:"xMax,attr"`
	YMax float64 `xml:"yMax,attr"`
	Text string  `xml:",chardata"`
}

func (e *Extractor) extractPDF(ctx context.Context, path string) (Document, error) {
	text, pages, warns, textErr := e.pdfToText(ctx, path)
	tokens, tokErr := e.pdfWordBoxes(ctx, path)
	if tokErr != nil {
		warns = append(warns, tokErr.Error())
	}

	if textErr == nil && strings.TrimSpace(text) != "" {
		return Document{
			Text:     text,
			Tokens:   tokens,
			Pages:    pages,
			Method:   "pdf-text",
			Warnings: warns,
		}, nil
	}
	if textErr != nil {
		warns = append(warns, textErr.Error())
	}

	// no text layer, likely a scanned PDF
	e.logger.Info("doctext.pdf.fallback_ocr", "path", path)
	doc, err := e.pdfToOCR(ctx, path)
	doc.Warnings = append(warns, doc.Warnings...)
	return doc, err
}

func (e *Extractor) pdfToText(ctx context.Context, path string) (text string, pages int, warnings []string, err error) {
	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		return "", 0, []string{string(errb)}, fmt.Errorf("pdftotext: %w", err)
	}
	text = string(out)
	// A form-feed \f is used as page separator by default
	pages = 1 + strings.Count(text, "\f")
	return text, pages, nil, nil
}

// pdfWordBoxes reads the text layer again in bbox mode to recover one
// positioned token per word.
func (e *Extractor) pdfWordBoxes(ctx context.Context, path string) ([]Token, error) {
	// pdftotext -bbox <path> -
	out, errb, err := e.runner.Run(ctx, e.cfg.Pdftotext, "-bbox", path, "-")
	if err != nil {
		return nil, fmt.Errorf("pdftotext -bbox: %s: %w", truncate(string(errb), 512), err)
	}

	var doc bboxDoc
	if err := xml.Unmarshal(out, &doc); err != nil {
		return nil, fmt.Errorf("parse bbox output: %w", err)
	}

	var tokens []Token
	for p, page := range doc.Pages {
		for _, w := range page.Words {
			text := strings.TrimSpace(w.Text)
			if text == "" {
				continue
			}
			tokens = append(tokens, Token{
				Text:   text,
				X:      w.XMin,
				Y:      w.YMin,
				Width:  w.XMax - w.XMin,
				Height: w.YMax - w.YMin,
				Page:   p,
			})
		}
	}
	return tokens, nil
}

func (e *Extractor) pdfToOCR(ctx context.Context, path string) (Document, error) {
	tmpDir, err := os.MkdirTemp("", "riq-pp-*")
	if err != nil {
		return Document{}, err
	}
	defer func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			e.logger.Warn("failed to remove temp dir", "path", tmpDir, "error", err)
		}
	}()

	prefix := filepath.Join(tmpDir, "page")
	// pdftoppm -r 300 -png <in.pdf> <tmp/page>
	_, errb, err := e.runner.Run(ctx, e.cfg.Pdftoppm, "-r", fmt.Sprintf("%d", e.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return Document{Warnings: []string{string(errb)}}, fmt.Errorf("pdftoppm: %w", err)
	}

	// collect generated pngs (prefix-1.png, prefix-2.png, ...)
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if e.cfg.MaxPages > 0 && len(matches) > e.cfg.MaxPages {
		matches = matches[:e.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return Document{}, fmt.Errorf("pdftoppm produced no images: %w", ErrUnreadableDocument)
	}

	var b strings.Builder
	var tokens []Token
	var warns []string
	for p, img := range matches {
		pageTokens, pageText, err := e.ocrImage(ctx, img, p)
		if err != nil {
			warns = append(warns, err.Error())
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\f\n") // keep a clear page break marker
		}
		b.WriteString(pageText)
		tokens = append(tokens, pageTokens...)
	}
	return Document{
		Text:     b.String(),
		Tokens:   tokens,
		Pages:    len(matches),
		Method:   "pdf-ocr",
		Warnings: warns,
	}, nil
}
