package doctext

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleBBox = `<?xml version="1.0" encoding="UTF-8"?>
<html xmlns="http://www.w3.org/1999/xhtml">
<head><title></title></head>
<body>
<doc>
  <page width="612.000000" height="792.000000">
    <word xMin="72.0" yMin="70.0" xMax="120.5" yMax="82.0">ACME</word>
    <word xMin="130.0" yMin="70.0" xMax="180.0" yMax="82.0">Store</word>
    <word xMin="72.0" yMin="90.0" xMax="110.0" yMax="102.0">Total:</word>
    <word xMin="115.0" yMin="90.0" xMax="150.0" yMax="102.0">12.50</word>
  </page>
</doc>
</body>
</html>`

const sampleTSV = "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext\n" +
	"1\t1\t0\t0\t0\t0\t0\t0\t600\t800\t-1\t\n" +
	"5\t1\t1\t1\t1\t1\t40\t50\t90\t20\t96.5\tACME\n" +
	"5\t1\t1\t1\t1\t2\t140\t50\t80\t20\t92.0\tStore\n" +
	"5\t1\t1\t1\t2\t1\t40\t90\t70\t20\t88.0\tTotal:\n" +
	"5\t1\t1\t1\t2\t2\t120\t90\t60\t20\t25.0\t12.50\n"

// stubRunner replies with canned output per binary and records calls. It can
// also fabricate the files a binary would have written.
type stubRunner struct {
	stdout map[string][]byte
	errs   map[string]error
	calls  []string
	onRun  func(name string, args []string)
}

func (r *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	key := name
	for _, a := range args {
		// pdftotext is invoked in two modes; key on the mode flag
		if a == "-bbox" || a == "-layout" {
			key = name + " " + a
		}
	}
	r.calls = append(r.calls, key)
	if r.onRun != nil {
		r.onRun(name, args)
	}
	if err, ok := r.errs[key]; ok {
		return nil, []byte("boom"), err
	}
	return r.stdout[key], nil, nil
}

func newExtractor(t *testing.T, r Runner) *Extractor {
	t.Helper()
	return NewExtractor(Config{}, slog.New(slog.NewTextHandler(os.Stderr, nil))).WithRunner(r)
}

func TestExtractPDFTextLayer(t *testing.T) {
	r := &stubRunner{stdout: map[string][]byte{
		"pdftotext -layout": []byte("ACME Store\nTotal: 12.50\n"),
		"pdftotext -bbox":   []byte(sampleBBox),
	}}
	e := newExtractor(t, r)

	doc, err := e.Extract(context.Background(), "receipt.pdf", "application/pdf")
	require.NoError(t, err)
	require.Equal(t, "pdf-text", doc.Method)
	require.Equal(t, 1, doc.Pages)
	require.Contains(t, doc.Text, "Total: 12.50")
	require.Len(t, doc.Tokens, 4)

	acme := doc.Tokens[0]
	require.Equal(t, "ACME", acme.Text)
	require.Equal(t, 72.0, acme.X)
	require.Equal(t, 70.0, acme.Y)
	require.InDelta(t, 48.5, acme.Width, 0.001)
	require.InDelta(t, 12.0, acme.Height, 0.001)
	require.Equal(t, 0, acme.Page)
}

func TestExtractPDFCountsPages(t *testing.T) {
	r := &stubRunner{stdout: map[string][]byte{
		"pdftotext -layout": []byte("page one\fpage two"),
		"pdftotext -bbox":   []byte(sampleBBox),
	}}
	e := newExtractor(t, r)

	doc, err := e.Extract(context.Background(), "receipt.pdf", "application/pdf")
	require.NoError(t, err)
	require.Equal(t, 2, doc.Pages)
}

func TestExtractScannedPDFFallsBackToOCR(t *testing.T) {
	r := &stubRunner{stdout: map[string][]byte{
		"pdftotext -layout": []byte("   \n"),
		"pdftotext -bbox":   []byte(sampleBBox),
		"tesseract":         []byte(sampleTSV),
	}}
	r.onRun = func(name string, args []string) {
		if name == "pdftoppm" {
			prefix := args[len(args)-1]
			require.NoError(t, os.WriteFile(prefix+"-1.png", []byte("png"), 0o644))
		}
	}
	e := newExtractor(t, r)

	doc, err := e.Extract(context.Background(), "scan.pdf", "application/pdf")
	require.NoError(t, err)
	require.Equal(t, "pdf-ocr", doc.Method)
	require.Equal(t, 1, doc.Pages)
	// the 25.0-confidence word is dropped
	require.Len(t, doc.Tokens, 3)
	require.Contains(t, r.calls, "pdftoppm")
	require.Contains(t, r.calls, "tesseract")
}

func TestExtractImageFiltersLowConfidence(t *testing.T) {
	r := &stubRunner{stdout: map[string][]byte{
		"tesseract": []byte(sampleTSV),
	}}
	r.onRun = func(name string, args []string) {
		if name == "magick" {
			out := args[len(args)-1]
			require.NoError(t, os.WriteFile(out, []byte("png"), 0o644))
		}
	}
	e := newExtractor(t, r)

	doc, err := e.Extract(context.Background(), "receipt.jpg", "image/jpeg")
	require.NoError(t, err)
	require.Equal(t, "image-ocr", doc.Method)
	require.Len(t, doc.Tokens, 3)
	for _, tok := range doc.Tokens {
		require.Greater(t, tok.Confidence, float64(MinWordConfidence))
	}
	require.Equal(t, "ACME", doc.Tokens[0].Text)
	require.Equal(t, 40.0, doc.Tokens[0].X)
	require.Equal(t, 50.0, doc.Tokens[0].Y)
	require.NotContains(t, doc.Text, "12.50")
}

func TestExtractImagePreprocessFailureStillOCRs(t *testing.T) {
	r := &stubRunner{
		stdout: map[string][]byte{"tesseract": []byte(sampleTSV)},
		errs:   map[string]error{"magick": fmt.Errorf("exit status 1")},
	}
	e := newExtractor(t, r)

	doc, err := e.Extract(context.Background(), "receipt.png", "image/png")
	require.NoError(t, err)
	require.Len(t, doc.Tokens, 3)
	require.NotEmpty(t, doc.Warnings)
}

func TestExtractUnreadableDocument(t *testing.T) {
	r := &stubRunner{stdout: map[string][]byte{
		"tesseract": []byte("level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext\n"),
	}}
	r.onRun = func(name string, args []string) {
		if name == "magick" {
			out := args[len(args)-1]
			require.NoError(t, os.WriteFile(out, []byte("png"), 0o644))
		}
	}
	e := newExtractor(t, r)

	_, err := e.Extract(context.Background(), "blank.png", "image/png")
	require.ErrorIs(t, err, ErrUnreadableDocument)
}

func TestExtractUnsupportedFormat(t *testing.T) {
	e := newExtractor(t, &stubRunner{})
	_, err := e.Extract(context.Background(), "notes.txt", "text/plain")
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "unsupported"))
}
