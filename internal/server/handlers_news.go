package server

import (
	"net/http"
)

// handleNews handles GET /api/news — latest business headlines for the
// dashboard feed. Upstream failures surface as an empty list, never an error.
func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	articles := s.app.NewsService.Headlines(r.Context())
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"data":   articles,
		"count":  len(articles),
	})
}
