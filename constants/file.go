package constants

import "strings"

// Document formats handled by the text/coordinate extractor.
const (
	PDF   = "PDF"
	IMAGE = "IMAGE"
)

// AllowedMimeTypes holds the upload allowlist for receipt documents.
var AllowedMimeTypes = map[string]struct{}{
	"application/pdf": {},
	"image/jpeg":      {},
	"image/png":       {},
}

// MaxUploadBytes caps receipt uploads.
const MaxUploadBytes = 10 << 20 // 10MB

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a file extension to a document format, or "".
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "jpg", "jpeg", "png", "tiff", "bmp":
		return IMAGE
	default:
		return ""
	}
}

// MapMimeToFormat maps a mime type to a document format, or "".
func MapMimeToFormat(mime string) string {
	switch strings.ToLower(mime) {
	case "application/pdf":
		return PDF
	case "image/jpeg", "image/png", "image/tiff", "image/bmp":
		return IMAGE
	default:
		return ""
	}
}
