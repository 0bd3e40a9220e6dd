package openai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/receiptiq/receiptiq/constants"
	"github.com/receiptiq/receiptiq/internal/doctext"
	"github.com/receiptiq/receiptiq/internal/entity"
	"github.com/receiptiq/receiptiq/internal/llm"
)

func testFields() []*entity.Field {
	return []*entity.Field{
		{ID: uuid.New(), Name: "vendor", Type: constants.FieldTypeString},
		{ID: uuid.New(), Name: "total", Type: constants.FieldTypeNumber},
	}
}

const documentResult = `{
	"vendor": {"value": "ACME", "coordinates": {"x": 10, "y": 20, "width": 50, "height": 12}},
	"total": {"value": 12.5, "coordinates": {"x": 10, "y": 40, "width": 30, "height": 12}}
}`

func TestExtractDocumentMode(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/responses", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		b, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(b, &gotBody))

		resp := map[string]any{
			"output": []map[string]any{
				{"type": "reasoning"},
				{"type": "message", "content": []map[string]any{
					{"type": "output_text", "text": documentResult},
				}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, Mode: ModeDocument}, nil)
	result, raw, err := c.Extract(context.Background(), llm.Request{
		Fields:      testFields(),
		DocumentURL: "https://store.example/doc.pdf?sig=abc",
		MimeType:    "application/pdf",
	})
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	vendor := result["vendor"].(map[string]any)
	require.Equal(t, "ACME", vendor["value"])

	// request carries the strict schema envelope and the file by URL
	text := gotBody["text"].(map[string]any)
	format := text["format"].(map[string]any)
	require.Equal(t, "json_schema", format["type"])
	require.Equal(t, true, format["strict"])

	input := gotBody["input"].([]any)
	user := input[1].(map[string]any)
	content := user["content"].([]any)
	file := content[1].(map[string]any)
	require.Equal(t, "input_file", file["type"])
	require.Equal(t, "https://store.example/doc.pdf?sig=abc", file["file_url"])
}

func TestExtractDocumentModeImageAttachment(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(b, &gotBody))
		resp := map[string]any{
			"output": []map[string]any{
				{"type": "message", "content": []map[string]any{
					{"type": "output_text", "text": documentResult},
				}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL, Mode: ModeDocument}, nil)
	_, _, err := c.Extract(context.Background(), llm.Request{
		Fields:      testFields(),
		DocumentURL: "https://store.example/receipt.jpg",
		MimeType:    "image/jpeg",
	})
	require.NoError(t, err)

	input := gotBody["input"].([]any)
	content := input[1].(map[string]any)["content"].([]any)
	img := content[1].(map[string]any)
	require.Equal(t, "input_image", img["type"])
	require.Equal(t, "https://store.example/receipt.jpg", img["image_url"])
}

func TestExtractDocumentModeRejectsContractViolation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"output": []map[string]any{
				{"type": "message", "content": []map[string]any{
					{"type": "output_text", "text": `{"vendor": "just a string"}`},
				}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL, Mode: ModeDocument}, nil)
	_, _, err := c.Extract(context.Background(), llm.Request{
		Fields:      testFields(),
		DocumentURL: "https://store.example/doc.pdf",
		MimeType:    "application/pdf",
	})
	require.Error(t, err)
}

func TestExtractTextMode(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		b, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(b, &gotBody))

		content := "```json\n" + documentResult + "\n```"
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL, Mode: ModeText}, nil)
	result, _, err := c.Extract(context.Background(), llm.Request{
		Fields: testFields(),
		Text:   "ACME Store\nTotal: 12.50",
		Tokens: []doctext.Token{
			{Text: "ACME", X: 10, Y: 20, Width: 50, Height: 12},
			{Text: "12.50", X: 10, Y: 40, Width: 30, Height: 12},
		},
	})
	require.NoError(t, err)

	total := result["total"].(map[string]any)
	require.Equal(t, 12.5, total["value"])

	// prompt embeds the text, the positioned words, and the schema
	messages := gotBody["messages"].([]any)
	user := messages[1].(map[string]any)["content"].(string)
	require.Contains(t, user, "ACME Store")
	require.Contains(t, user, "ACME 10.0 20.0 50.0 12.0 0")
	require.Contains(t, user, "REQUIRED SCHEMA:")
	require.Contains(t, user, `"coordinates"`)
}

func TestExtractTextModeRequiresText(t *testing.T) {
	c := NewClient(Config{APIKey: "k", Mode: ModeText}, nil)
	_, _, err := c.Extract(context.Background(), llm.Request{Fields: testFields()})
	require.Error(t, err)
}

func TestExtractSurfacesProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL, Mode: ModeDocument}, nil)
	_, _, err := c.Extract(context.Background(), llm.Request{
		Fields:      testFields(),
		DocumentURL: "https://store.example/doc.pdf",
		MimeType:    "application/pdf",
	})
	require.Error(t, err)
}
