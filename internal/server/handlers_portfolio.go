package server

import (
	"net/http"
	"strings"

	"github.com/rsharma/finboard/internal/common"
)

// handlePortfolioAnalyze handles GET /api/portfolio/analyze — aggregated
// valuation metrics for the owner's holdings.
func (s *Server) handlePortfolioAnalyze(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	ctx := r.Context()
	owner := common.ResolveOwner(ctx, r.URL.Query().Get("owner"))
	if owner == "" {
		WriteError(w, http.StatusBadRequest, "owner is required")
		return
	}

	metrics, err := s.app.PortfolioService.Analyze(ctx, owner)
	if err != nil {
		s.logger.Error().Err(err).Str("owner", owner).Msg("Portfolio analysis failed")
		WriteError(w, http.StatusInternalServerError, "failed to analyze portfolio")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"metrics": metrics,
	})
}

// handlePortfolioChart handles GET /api/portfolio/chart — renders the
// allocation donut as PNG.
func (s *Server) handlePortfolioChart(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	ctx := r.Context()
	owner := common.ResolveOwner(ctx, r.URL.Query().Get("owner"))
	if owner == "" {
		WriteError(w, http.StatusBadRequest, "owner is required")
		return
	}

	png, err := s.app.PortfolioService.AllocationChart(ctx, owner)
	if err != nil {
		if strings.Contains(err.Error(), "no assets") || strings.Contains(err.Error(), "no positive") {
			WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		s.logger.Error().Err(err).Str("owner", owner).Msg("Chart render failed")
		WriteError(w, http.StatusInternalServerError, "failed to render chart")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
