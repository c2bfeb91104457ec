// Package sentiment classifies news text into a stock recommendation
package sentiment

import (
	"context"
	"fmt"
	"strings"

	"github.com/rsharma/finboard/internal/common"
	"github.com/rsharma/finboard/internal/interfaces"
	"github.com/rsharma/finboard/internal/models"
)

const fallbackNote = "Defaulting to HOLD due to unclear analysis"

// Service implements SentimentService.
type Service struct {
	genai  interfaces.GenAIClient
	logger *common.Logger
}

// NewService creates a new sentiment service.
// genai may be nil — every classification degrades to HOLD.
func NewService(genai interfaces.GenAIClient, logger *common.Logger) *Service {
	return &Service{
		genai:  genai,
		logger: logger,
	}
}

// Analyze classifies text into exactly one of BUY, SELL, or HOLD. The
// provider's output is trimmed and upper-cased; anything outside the
// three-value set — extra words, refusal text, provider failure — coerces to
// HOLD with a note. Never returns an error to the caller.
func (s *Service) Analyze(ctx context.Context, text string) *models.Recommendation {
	if s.genai == nil {
		return &models.Recommendation{
			Recommendation: models.RecommendationHold,
			Note:           fallbackNote,
		}
	}

	prompt := fmt.Sprintf(`Based on this news article, provide a one-word stock recommendation: either "BUY", "SELL", or "HOLD". Consider the market impact and sentiment. Here's the text: %q`, text)

	raw, err := s.genai.Complete(ctx, prompt)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Sentiment call failed, defaulting to HOLD")
		return &models.Recommendation{
			Recommendation: models.RecommendationHold,
			Note:           fallbackNote,
		}
	}

	rec := strings.ToUpper(strings.TrimSpace(raw))
	switch rec {
	case models.RecommendationBuy, models.RecommendationSell, models.RecommendationHold:
		return &models.Recommendation{Recommendation: rec}
	}

	s.logger.Debug().Str("raw", raw).Msg("Unparseable recommendation, defaulting to HOLD")
	return &models.Recommendation{
		Recommendation: models.RecommendationHold,
		Note:           fallbackNote,
	}
}

// Ensure Service implements SentimentService
var _ interfaces.SentimentService = (*Service)(nil)
