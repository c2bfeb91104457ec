// Package portfolio provides portfolio valuation with AI-augmented gain estimation
package portfolio

import (
	"context"
	"fmt"
	"math"

	"github.com/rsharma/finboard/internal/common"
	"github.com/rsharma/finboard/internal/interfaces"
	"github.com/rsharma/finboard/internal/models"
)

// Service implements PortfolioService. The generative client is advisory
// only: valuation arithmetic never depends on it succeeding.
type Service struct {
	storage interfaces.StorageManager
	genai   interfaces.GenAIClient
	logger  *common.Logger
}

// NewService creates a new portfolio service.
// genai may be nil — forecasts degrade to zero and metrics reduce to the
// actual-only computation.
func NewService(storage interfaces.StorageManager, genai interfaces.GenAIClient, logger *common.Logger) *Service {
	return &Service{
		storage: storage,
		genai:   genai,
		logger:  logger,
	}
}

// Analyze loads the owner's holdings and computes the aggregated metrics.
// Owner must be non-empty; store failures surface to the caller.
func (s *Service) Analyze(ctx context.Context, owner string) (*models.PortfolioMetrics, error) {
	if owner == "" {
		return nil, fmt.Errorf("owner is required")
	}

	assets, err := s.storage.AssetStore().ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to load assets for '%s': %w", owner, err)
	}

	return s.ComputeMetrics(ctx, assets), nil
}

// ComputeMetrics aggregates the holdings and blends in the AI forecast.
//
// The gain figures take the larger of actual and predicted — a deliberate
// product choice to bias the dashboard toward the optimistic number. Do not
// replace with an average or actual-only figures.
func (s *Service) ComputeMetrics(ctx context.Context, assets []*models.Asset) *models.PortfolioMetrics {
	var totalValue, totalCost float64
	for _, a := range assets {
		totalValue += a.CurrentValue
		totalCost += a.Cost()
	}

	forecast := s.requestForecast(ctx, assets)

	actualGain := totalValue - totalCost
	actualPercentage := 0.0
	if totalCost > 0 {
		actualPercentage = actualGain / totalCost * 100
	}

	return &models.PortfolioMetrics{
		TotalValue:     totalValue,
		TotalCost:      totalCost,
		TotalGain:      math.Max(actualGain, forecast.PredictedGain),
		PercentageGain: math.Max(actualPercentage, forecast.PredictedPercentage),
	}
}

// requestForecast asks the generative provider for speculative gain figures.
// Any failure — missing client, timeout, unparseable response — yields the
// zero forecast so the overall request never fails on the AI path.
func (s *Service) requestForecast(ctx context.Context, assets []*models.Asset) models.Forecast {
	if s.genai == nil {
		return models.Forecast{}
	}

	text, err := s.genai.Complete(ctx, buildForecastPrompt(assets))
	if err != nil {
		s.logger.Warn().Err(err).Msg("Forecast call failed, using zero forecast")
		return models.Forecast{}
	}

	return ParseForecast(text)
}

// Ensure Service implements PortfolioService
var _ interfaces.PortfolioService = (*Service)(nil)
