package doctext

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

func (e *Extractor) extractImage(ctx context.Context, path string) (Document, error) {
	var warns []string

	clean, cleanup, err := e.preprocessImage(ctx, path)
	if err != nil {
		// OCR the original rather than failing outright
		warns = append(warns, err.Error())
		clean = path
	}
	if cleanup != nil {
		defer cleanup()
	}

	tokens, text, err := e.ocrImage(ctx, clean, 0)
	if err != nil {
		return Document{Warnings: warns}, err
	}
	return Document{
		Text:     text,
		Tokens:   tokens,
		Pages:    1,
		Method:   "image-ocr",
		Warnings: warns,
	}, nil
}

// preprocessImage denoises and binarizes the image so OCR sees clean glyphs.
func (e *Extractor) preprocessImage(ctx context.Context, path string) (string, func(), error) {
	tmpDir, err := os.MkdirTemp("", "riq-img-*")
	if err != nil {
		return "", nil, err
	}
	cleanup := func() { _ = os.RemoveAll(tmpDir) }
	out := filepath.Join(tmpDir, "clean.png")

	// magick <in> -colorspace Gray -despeckle -auto-threshold OTSU <out>
	_, errb, err := e.runner.Run(ctx, e.cfg.Magick, path,
		"-colorspace", "Gray", "-despeckle", "-auto-threshold", "OTSU", out)
	if err != nil {
		cleanup()
		return "", nil, fmt.Errorf("magick preprocess: %s: %w", truncate(string(errb), 512), err)
	}
	if _, statErr := os.Stat(out); statErr != nil {
		cleanup()
		return "", nil, fmt.Errorf("magick produced no output: %v", statErr)
	}
	return out, cleanup, nil
}

// ocrImage runs tesseract in TSV mode and returns the confident word tokens
// plus the text reassembled line by line.
func (e *Extractor) ocrImage(ctx context.Context, path string, page int) ([]Token, string, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}
	args = append(args, "tsv")

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return nil, "", fmt.Errorf("tesseract: %s: %w", truncate(string(errb), 512), err)
	}
	tokens := parseTSV(string(out), page)

	var b strings.Builder
	lastLine := -1
	for _, tok := range tokens {
		line := int(tok.Y + 0.5)
		if b.Len() > 0 {
			// tokens more than half a glyph apart vertically start a new line
			if lastLine >= 0 && abs(line-lastLine) > int(tok.Height/2)+1 {
				b.WriteString("\n")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString(tok.Text)
		lastLine = line
	}
	return tokens, b.String(), nil
}

// parseTSV reads tesseract TSV output. Word rows are level 5; the conf
// column is -1 for structural rows. Low-confidence words are dropped.
func parseTSV(tsv string, page int) []Token {
	var tokens []Token
	for i, ln := range strings.Split(tsv, "\n") {
		if i == 0 || ln == "" {
			continue // header
		}
		cols := strings.Split(ln, "\t")
		if len(cols) < 12 {
			continue
		}
		level, _ := strconv.Atoi(cols[0])
		if level != 5 {
			continue
		}
		conf, err := strconv.ParseFloat(cols[10], 64)
		if err != nil || conf <= MinWordConfidence {
			continue
		}
		text := strings.TrimSpace(cols[11])
		if text == "" {
			continue
		}
		left, _ := strconv.ParseFloat(cols[6], 64)
		top, _ := strconv.ParseFloat(cols[7], 64)
		width, _ := strconv.ParseFloat(cols[8], 64)
		height, _ := strconv.ParseFloat(cols[9], 64)
		tokens = append(tokens, Token{
			Text:       text,
			X:          left,
			Y:          top,
			Width:      width,
			Height:     height,
			Page:       page,
			Confidence: conf,
		})
	}
	return tokens
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
