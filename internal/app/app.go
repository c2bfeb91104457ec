// Package app wires configuration, storage, clients, and services together.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rsharma/finboard/internal/clients/gemini"
	"github.com/rsharma/finboard/internal/clients/newsapi"
	"github.com/rsharma/finboard/internal/common"
	"github.com/rsharma/finboard/internal/interfaces"
	"github.com/rsharma/finboard/internal/services/chat"
	"github.com/rsharma/finboard/internal/services/news"
	"github.com/rsharma/finboard/internal/services/portfolio"
	"github.com/rsharma/finboard/internal/services/sentiment"
	"github.com/rsharma/finboard/internal/storage"
)

// App holds all initialized services and clients. Clients and storage are
// created once per process and injected into the services; nothing here is
// an ambient global.
type App struct {
	Config           *common.Config
	Logger           *common.Logger
	Storage          interfaces.StorageManager
	GenAIClient      interfaces.GenAIClient
	NewsClient       interfaces.NewsClient
	PortfolioService interfaces.PortfolioService
	SentimentService interfaces.SentimentService
	NewsService      interfaces.NewsService
	ChatService      interfaces.ChatService
	StartupTime      time.Time
}

// NewApp initializes storage, clients, and services from configuration.
// configPath may be empty, in which case FINBOARD_CONFIG and the default
// config locations are tried.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	if configPath == "" {
		configPath = os.Getenv("FINBOARD_CONFIG")
	}
	if configPath == "" {
		configPath = "config/finboard.toml"
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	storageManager, err := storage.NewStorageManager(logger, config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	ctx := context.Background()

	var genaiClient interfaces.GenAIClient
	geminiKey, err := common.ResolveAPIKey("gemini_api_key", config.Clients.Gemini.APIKey)
	if err != nil {
		logger.Warn().Msg("Gemini API key not configured - forecasts and sentiment degrade to safe defaults")
	} else {
		client, err := gemini.NewClient(ctx, geminiKey,
			gemini.WithLogger(logger),
			gemini.WithModel(config.Clients.Gemini.Model),
			gemini.WithTimeout(config.Clients.Gemini.GetTimeout()),
		)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize Gemini client")
		} else {
			genaiClient = client
		}
	}

	var newsClient interfaces.NewsClient
	newsKey, err := common.ResolveAPIKey("news_api_key", config.Clients.News.APIKey)
	if err != nil {
		logger.Warn().Msg("News API key not configured - headlines feed will be empty")
	} else {
		newsClient = newsapi.NewClient(newsKey,
			newsapi.WithLogger(logger),
			newsapi.WithBaseURL(config.Clients.News.BaseURL),
			newsapi.WithRateLimit(config.Clients.News.RateLimit),
			newsapi.WithTimeout(config.Clients.News.GetTimeout()),
		)
	}

	portfolioService := portfolio.NewService(storageManager, genaiClient, logger)
	sentimentService := sentiment.NewService(genaiClient, logger)
	newsService := news.NewService(newsClient, config.Clients.News.PageSize, logger)
	chatService := chat.NewService(genaiClient, logger)

	a := &App{
		Config:           config,
		Logger:           logger,
		Storage:          storageManager,
		GenAIClient:      genaiClient,
		NewsClient:       newsClient,
		PortfolioService: portfolioService,
		SentimentService: sentimentService,
		NewsService:      newsService,
		ChatService:      chatService,
		StartupTime:      startupStart,
	}

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")

	return a, nil
}

// Close releases all resources held by the App.
func (a *App) Close() {
	if a.GenAIClient != nil {
		a.GenAIClient.Close()
	}
	if a.Storage != nil {
		a.Storage.Close()
		a.Storage = nil
	}
}
