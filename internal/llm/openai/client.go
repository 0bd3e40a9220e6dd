package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/receiptiq/receiptiq/constants"
	"github.com/receiptiq/receiptiq/internal/llm"
	"github.com/receiptiq/receiptiq/internal/schema"
)

const documentSystemPrompt = `You are a precise data extraction assistant.
Given the receipt and schema, extract the data that matches the schema.
If a field cannot be found, use an empty value.
Be precise with numbers and dates.
Include estimates for coordinates in the format given:
x is the x coordinate of the start of the value,
y is the y coordinate of the start of the value,
width is the pixel width of the extracted value,
height is the pixel height of the extracted value.`

const textSystemPrompt = `You are a precise data extraction assistant. Return only valid JSON.
Extract the requested information from the document text and return it as
JSON matching the schema exactly. If a field cannot be found, use an empty
value. Be precise with numbers and dates. Estimate each value's coordinates
by matching it to the positioned words listed after the text: x and y from
the first matching word, width and height covering the whole value.`

const maxPromptTextBytes = 8000
const maxPromptTokens = 1200

// Extract implements llm.Extractor against the OpenAI API, dispatching on
// the configured mode.
func (c *Client) Extract(ctx context.Context, req llm.Request) (map[string]any, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.logger.Info("llm.extract.start",
		"req_id", rid,
		"model", c.cfg.Model,
		"mode", c.cfg.Mode,
		"fields", len(req.Fields),
		"has_url", req.DocumentURL != "",
		"text_len", len(req.Text),
		"tokens", len(req.Tokens),
	)

	var result map[string]any
	var raw []byte
	var err error
	switch c.cfg.Mode {
	case ModeDocument:
		result, raw, err = c.extractDocument(ctx, rid, req)
	case ModeText:
		result, raw, err = c.extractText(ctx, rid, req)
	default:
		return nil, nil, fmt.Errorf("unsupported extraction mode: %q", c.cfg.Mode)
	}
	if err != nil {
		c.logger.Error("llm.extract.failed",
			"req_id", rid, "mode", c.cfg.Mode, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, raw, err
	}

	c.logger.Info("llm.extract.ok",
		"req_id", rid,
		"mode", c.cfg.Mode,
		"top_level_keys", len(result),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return result, raw, nil
}

// extractDocument sends the document by URL to the responses API with a
// strict output schema, so the reply is structurally guaranteed to match
// the field tree.
func (c *Client) extractDocument(ctx context.Context, rid string, req llm.Request) (map[string]any, []byte, error) {
	if req.DocumentURL == "" {
		return nil, nil, fmt.Errorf("document mode requires a document URL")
	}

	var attachment map[string]any
	if constants.MapMimeToFormat(req.MimeType) == constants.PDF {
		attachment = map[string]any{"type": "input_file", "file_url": req.DocumentURL}
	} else {
		attachment = map[string]any{"type": "input_image", "image_url": req.DocumentURL}
	}

	body := map[string]any{
		"model": c.cfg.Model,
		"input": []map[string]any{
			{"role": "system", "content": documentSystemPrompt},
			{"role": "user", "content": []map[string]any{
				{"type": "input_text", "text": "Extract the data from the receipt that matches the schema"},
				attachment,
			}},
		},
		"text": map[string]any{"format": schema.ResponseFormat(req.Fields)},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/responses"
	raw, _, err := llm.SendJSON(ctx, c.http, endpoint, body, c.authHeaders(), c.logger)
	if err != nil {
		return nil, raw, fmt.Errorf("openai responses call: %w", err)
	}

	text, err := responseOutputText(raw)
	if err != nil {
		return nil, raw, err
	}

	result, err := llm.DecodeJSONObject([]byte(text))
	if err != nil {
		return nil, raw, err
	}
	if err := llm.ValidateAgainstContract(schema.Contract(req.Fields), []byte(text)); err != nil {
		c.logger.Error("llm.extract.contract_violation", "req_id", rid, "error", err)
		return nil, raw, err
	}
	return result, raw, nil
}

// extractText sends the extracted text and token positions through
// chat/completions. There is no structural guarantee in this mode, so the
// reply is parsed defensively.
func (c *Client) extractText(ctx context.Context, rid string, req llm.Request) (map[string]any, []byte, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, nil, fmt.Errorf("text mode requires extracted document text")
	}

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": textSystemPrompt},
			{"role": "user", "content": buildTextPrompt(req)},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, _, err := llm.SendJSON(ctx, c.http, endpoint, body, c.authHeaders(), c.logger)
	if err != nil {
		return nil, raw, fmt.Errorf("openai chat call: %w", err)
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return nil, raw, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return nil, raw, fmt.Errorf("no choices in openai response")
	}

	result, err := llm.DecodeJSONObject([]byte(cc.Choices[0].Message.Content))
	if err != nil {
		c.logger.Error("llm.extract.bad_json", "req_id", rid, "error", err)
		return nil, raw, err
	}
	return result, raw, nil
}

func (c *Client) authHeaders() map[string]string {
	return map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}
}

func buildTextPrompt(req llm.Request) string {
	text := req.Text
	if len(text) > maxPromptTextBytes {
		text = text[:maxPromptTextBytes]
	}

	var b strings.Builder
	b.WriteString("DOCUMENT TEXT:\n")
	b.WriteString(text)
	b.WriteString("\n\nPOSITIONED WORDS (text x y width height page):\n")
	tokens := req.Tokens
	if len(tokens) > maxPromptTokens {
		tokens = tokens[:maxPromptTokens]
	}
	for _, t := range tokens {
		fmt.Fprintf(&b, "%s %.1f %.1f %.1f %.1f %d\n", t.Text, t.X, t.Y, t.Width, t.Height, t.Page)
	}
	b.WriteString("\nREQUIRED SCHEMA:\n")
	b.WriteString(schema.Describe(req.Fields))
	b.WriteString("\n\nExtract the data that matches the schema from the document text above.\n")
	b.WriteString("Return ONLY valid JSON that matches the schema structure.\n")
	b.WriteString("Do not include any explanations or additional text.\n")
	return b.String()
}

// responseOutputText pulls the concatenated output text out of a responses
// API reply.
func responseOutputText(raw []byte) (string, error) {
	var rr struct {
		Output []struct {
			Type    string `json:"type"`
			Content []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"content"`
		} `json:"output"`
	}
	if err := json.Unmarshal(raw, &rr); err != nil {
		return "", fmt.Errorf("decode openai response: %w", err)
	}
	var b strings.Builder
	for _, item := range rr.Output {
		if item.Type != "message" {
			continue
		}
		for _, content := range item.Content {
			if content.Type == "output_text" {
				b.WriteString(content.Text)
			}
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("no output text in openai response")
	}
	return b.String(), nil
}
