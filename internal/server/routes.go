package server

import (
	"net/http"
	"time"

	"github.com/rsharma/finboard/internal/common"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/api/config", s.handleConfig)
	mux.HandleFunc("/api/shutdown", s.handleShutdown)

	// Auth
	mux.HandleFunc("/api/auth/signup", s.handleAuthSignup)
	mux.HandleFunc("/api/auth/login", s.handleAuthLogin)
	mux.HandleFunc("/api/auth/validate", s.handleAuthValidate)

	// Assets
	mux.HandleFunc("/api/assets/", s.handleAssetByID)
	mux.HandleFunc("/api/assets", s.handleAssets)

	// Portfolio
	mux.HandleFunc("/api/portfolio/analyze", s.handlePortfolioAnalyze)
	mux.HandleFunc("/api/portfolio/chart", s.handlePortfolioChart)

	// AI
	mux.HandleFunc("/api/sentiment", s.handleSentiment)
	mux.HandleFunc("/api/chat", s.handleChat)

	// News
	mux.HandleFunc("/api/news", s.handleNews)
}

// --- System handlers ---

// handleShutdown handles POST /api/shutdown (dev mode only).
func (s *Server) handleShutdown(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	if s.app.Config.IsProduction() {
		WriteError(w, http.StatusForbidden, "Shutdown endpoint disabled in production")
		return
	}

	s.logger.Info().Msg("Shutdown requested via HTTP endpoint")

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Shutting down gracefully...\n"))

	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}

	if s.shutdownChan != nil {
		go func() {
			time.Sleep(100 * time.Millisecond)
			s.shutdownChan <- struct{}{}
		}()
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	uptime := time.Since(s.app.StartupTime).Round(time.Second)

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"environment":       s.app.Config.Environment,
		"uptime":            uptime.String(),
		"started_at":        s.app.StartupTime,
		"storage_driver":    s.app.Config.Storage.Driver,
		"storage_path":      s.app.Config.Storage.Path,
		"storage_address":   s.app.Config.Storage.Address,
		"logging_level":     s.app.Config.Logging.Level,
		"gemini_model":      s.app.Config.Clients.Gemini.Model,
		"gemini_api_key":    maskSecret(s.app.Config.Clients.Gemini.APIKey),
		"news_api_key":      maskSecret(s.app.Config.Clients.News.APIKey),
		"gemini_configured": s.app.GenAIClient != nil,
		"news_configured":   s.app.NewsClient != nil,
	})
}
