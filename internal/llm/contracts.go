package llm

import (
	"context"

	"github.com/receiptiq/receiptiq/internal/doctext"
	"github.com/receiptiq/receiptiq/internal/entity"
)

// Request carries one extraction call. Document-native mode needs
// DocumentURL and MimeType; text mode needs Text and Tokens from the
// document extractor. Fields is the project's field tree in both modes.
type Request struct {
	Fields []*entity.Field

	DocumentURL string
	MimeType    string

	Text   string
	Tokens []doctext.Token
}

// Extractor is the interface the receipt pipeline depends on. The returned
// map mirrors the field tree: objects nest, arrays hold objects, scalars
// are {value, coordinates} pairs. The raw response body is returned for
// logging and debugging alongside the parsed result.
type Extractor interface {
	Extract(ctx context.Context, req Request) (map[string]any, []byte, error)
}
