package server

import (
	"net/http"
	"strings"
)

// handleSentiment handles POST /api/sentiment — classify news text into a
// BUY/SELL/HOLD recommendation.
func (s *Server) handleSentiment(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		WriteError(w, http.StatusBadRequest, "text is required")
		return
	}

	rec := s.app.SentimentService.Analyze(r.Context(), req.Text)
	WriteJSON(w, http.StatusOK, rec)
}
