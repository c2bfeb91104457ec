// Package newsapi provides a client for the newsapi.org REST API
package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/rsharma/finboard/internal/common"
	"github.com/rsharma/finboard/internal/interfaces"
	"github.com/rsharma/finboard/internal/models"
)

const (
	DefaultBaseURL   = "https://newsapi.org/v2"
	DefaultTimeout   = 10 * time.Second
	DefaultRateLimit = 5 // requests per second
	DefaultPageSize  = 10
)

// Client implements the NewsClient interface
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new newsapi.org client
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents a non-2xx response from the news API.
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("newsapi %s returned %d: %s", e.Endpoint, e.StatusCode, e.Message)
}

type headlinesResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Content     string `json:"content"`
	} `json:"articles"`
}

// TopHeadlines fetches the latest business headlines (English), mapped to
// dashboard articles.
func (c *Client) TopHeadlines(ctx context.Context, limit int) ([]*models.NewsArticle, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	params := url.Values{}
	params.Set("category", "business")
	params.Set("language", "en")
	params.Set("pageSize", strconv.Itoa(limit))

	endpoint := c.baseURL + "/top-headlines?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build headlines request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("headlines request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   "/top-headlines",
		}
	}

	var parsed headlinesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode headlines response: %w", err)
	}

	articles := make([]*models.NewsArticle, 0, len(parsed.Articles))
	for i, a := range parsed.Articles {
		if i >= limit {
			break
		}
		company := a.Source.Name
		if company == "" {
			company = "Business News"
		}
		content := a.Description
		if content == "" {
			content = a.Content
		}
		if content == "" {
			content = "No content available"
		}
		articles = append(articles, &models.NewsArticle{
			ID:       i + 1,
			Company:  company,
			Headline: a.Title,
			Content:  content,
		})
	}

	c.logger.Debug().Int("count", len(articles)).Msg("Fetched top headlines")
	return articles, nil
}

// Ensure Client implements NewsClient
var _ interfaces.NewsClient = (*Client)(nil)
