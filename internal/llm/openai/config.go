package openai

import (
	"log/slog"
	"net/http"
	"os"
	"time"
)

// Extraction modes. Document mode sends the file itself by URL to a
// multimodal model with a strict output schema; text mode sends extracted
// text and token positions in a plain prompt.
const (
	ModeDocument = "document"
	ModeText     = "text"
)

// Config for the OpenAI client.
type Config struct {
	APIKey      string        // if empty, falls back to env OPENAI_API_KEY
	BaseURL     string        // default https://api.openai.com/v1
	Model       string        // e.g. "gpt-5-mini"
	Temperature float32       // 0..2, used by text mode only
	Timeout     time.Duration // http client timeout
	Mode        string        // ModeDocument | ModeText
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-5-mini"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeDocument
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}
