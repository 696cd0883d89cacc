// Package gemini implements advisory.Advisor on top of Google's Gemini API.
package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"golang.org/x/exp/slog"
	"google.golang.org/api/option"

	"legaldesk/internal/domain/advisory"
)

// generator is the part of *genai.GenerativeModel the client uses.
type generator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type Client struct {
	client  *genai.Client
	model   generator
	timeout time.Duration
	log     *slog.Logger
}

type Config struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

func New(ctx context.Context, cfg Config, log *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: api key is not configured")
	}

	c, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &Client{
		client:  c,
		model:   c.GenerativeModel(cfg.Model),
		timeout: cfg.Timeout,
		log:     log.With("component", "gemini", "model", cfg.Model),
	}, nil
}

func newWithModel(model generator, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{model: model, timeout: timeout, log: log}
}

func (c *Client) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

func (c *Client) Analyze(ctx context.Context, text, domainHint string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", advisory.ErrEmptyInput
	}
	return c.generate(ctx, "analyze", genai.Text(analyzePrompt(text, domainHint)))
}

func (c *Client) Transcribe(ctx context.Context, image []byte, mimeType string) (string, error) {
	if len(image) == 0 {
		return "", advisory.ErrEmptyInput
	}
	format, err := advisory.ImageFormat(mimeType)
	if err != nil {
		return "", err
	}
	return c.generate(ctx, "transcribe", genai.Text(transcribePrompt), genai.ImageData(format, image))
}

func (c *Client) Citations(ctx context.Context, query, domainHint string) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", advisory.ErrEmptyInput
	}
	return c.generate(ctx, "citations", genai.Text(citationsPrompt(query, domainHint)))
}

func (c *Client) generate(ctx context.Context, op string, parts ...genai.Part) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := c.model.GenerateContent(ctx, parts...)
	if err != nil {
		c.log.Warn("generation failed", "op", op, "error", err)
		return "", err
	}
	c.log.Debug("generation done", "op", op, "duration", time.Since(start))

	return responseText(resp), nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}

	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
		// first candidate only
		break
	}
	return b.String()
}
