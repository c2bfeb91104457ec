// Package interfaces defines service contracts for finboard
package interfaces

import (
	"context"

	"github.com/rsharma/finboard/internal/models"
)

// GenAIClient is the contract for a generative-text provider. Complete sends
// a prompt and returns the raw response text.
type GenAIClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Close() error
}

// NewsClient fetches business headlines from an external news provider.
type NewsClient interface {
	TopHeadlines(ctx context.Context, limit int) ([]*models.NewsArticle, error)
}
