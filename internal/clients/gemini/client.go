// Package gemini provides a client for the Google Gemini API
package gemini

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/rsharma/finboard/internal/common"
	"github.com/rsharma/finboard/internal/interfaces"
)

const (
	DefaultModel   = "gemini-2.0-flash"
	DefaultTimeout = 8 * time.Second
)

// Client implements the GenAIClient interface
type Client struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  *common.Logger
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithModel sets the model to use
func WithModel(model string) ClientOption {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithTimeout bounds each generative call
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, apiKey string, opts ...ClientOption) (*Client, error) {
	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c := &Client{
		client:  genaiClient,
		model:   DefaultModel,
		timeout: DefaultTimeout,
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Close closes the client
func (c *Client) Close() error {
	// The genai client doesn't have a Close method
	return nil
}

// Complete sends a prompt and returns the generated text. Each call carries a
// bounded timeout so a stalled provider cannot hold up the request.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	c.logger.Debug().Str("model", c.model).Msg("Generating content")

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	contents := genai.Text(prompt)
	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractTextFromResponse(result)
}

// extractTextFromResponse extracts text from a generate content response
func extractTextFromResponse(result *genai.GenerateContentResponse) (string, error) {
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	text := ""
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}

	return text, nil
}

// Ensure Client implements GenAIClient
var _ interfaces.GenAIClient = (*Client)(nil)
