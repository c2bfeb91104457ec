// Package news provides the dashboard headlines feed
package news

import (
	"context"

	"github.com/rsharma/finboard/internal/common"
	"github.com/rsharma/finboard/internal/interfaces"
	"github.com/rsharma/finboard/internal/models"
)

// Service implements NewsService.
type Service struct {
	client   interfaces.NewsClient
	pageSize int
	logger   *common.Logger
}

// NewService creates a new news service.
// client may be nil — headlines degrade to an empty feed.
func NewService(client interfaces.NewsClient, pageSize int, logger *common.Logger) *Service {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Service{
		client:   client,
		pageSize: pageSize,
		logger:   logger,
	}
}

// Headlines returns the latest business headlines. Upstream failure is
// absorbed and presented as an empty feed rather than an error.
func (s *Service) Headlines(ctx context.Context) []*models.NewsArticle {
	if s.client == nil {
		return []*models.NewsArticle{}
	}

	articles, err := s.client.TopHeadlines(ctx, s.pageSize)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Headlines fetch failed, returning empty feed")
		return []*models.NewsArticle{}
	}
	if articles == nil {
		articles = []*models.NewsArticle{}
	}
	return articles
}

// Ensure Service implements NewsService
var _ interfaces.NewsService = (*Service)(nil)
