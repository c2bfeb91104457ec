package server

import (
	"net/http"
	"strings"

	"github.com/rsharma/finboard/internal/models"
)

// handleChat handles POST /api/chat — the AI finance assistant.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		Message string               `json:"message"`
		History []models.ChatMessage `json:"history"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		WriteError(w, http.StatusBadRequest, "message is required")
		return
	}

	reply, err := s.app.ChatService.Reply(r.Context(), req.Message, req.History)
	if err != nil {
		if strings.Contains(err.Error(), "not configured") {
			WriteError(w, http.StatusServiceUnavailable, "assistant is not configured")
			return
		}
		s.logger.Error().Err(err).Msg("Chat reply failed")
		WriteError(w, http.StatusInternalServerError, "failed to generate reply")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"reply":  reply,
	})
}
