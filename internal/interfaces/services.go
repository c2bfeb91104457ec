package interfaces

import (
	"context"

	"github.com/rsharma/finboard/internal/models"
)

// PortfolioService produces the aggregated valuation view of an owner's
// holdings, blending actual arithmetic with the AI forecast.
type PortfolioService interface {
	Analyze(ctx context.Context, owner string) (*models.PortfolioMetrics, error)
	// AllocationChart renders a PNG donut of the owner's allocation by asset.
	AllocationChart(ctx context.Context, owner string) ([]byte, error)
}

// SentimentService classifies free text into BUY/SELL/HOLD. Provider failure
// degrades to HOLD with a note rather than an error.
type SentimentService interface {
	Analyze(ctx context.Context, text string) *models.Recommendation
}

// NewsService returns the dashboard's business headlines. Upstream failure
// degrades to an empty list.
type NewsService interface {
	Headlines(ctx context.Context) []*models.NewsArticle
}

// ChatService answers assistant messages.
type ChatService interface {
	Reply(ctx context.Context, message string, history []models.ChatMessage) (string, error)
}
