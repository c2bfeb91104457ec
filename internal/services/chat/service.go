// Package chat provides the AI assistant conversation service
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/rsharma/finboard/internal/common"
	"github.com/rsharma/finboard/internal/interfaces"
	"github.com/rsharma/finboard/internal/models"
)

const systemPreamble = `You are a helpful personal-finance assistant for a portfolio dashboard.
Answer questions about investing, portfolios, and market concepts in plain language.
Do not give individualized financial advice; suggest consulting a professional for decisions.`

// Service implements ChatService as a thin pass-through to the generative
// provider, replaying the prior turns as context.
type Service struct {
	genai  interfaces.GenAIClient
	logger *common.Logger
}

// NewService creates a new chat service.
func NewService(genai interfaces.GenAIClient, logger *common.Logger) *Service {
	return &Service{
		genai:  genai,
		logger: logger,
	}
}

// Reply answers a user message. Unlike the valuation forecast, chat has no
// safe default — a provider failure is surfaced to the caller.
func (s *Service) Reply(ctx context.Context, message string, history []models.ChatMessage) (string, error) {
	if message == "" {
		return "", fmt.Errorf("message is required")
	}
	if s.genai == nil {
		return "", fmt.Errorf("assistant is not configured")
	}

	reply, err := s.genai.Complete(ctx, buildChatPrompt(message, history))
	if err != nil {
		return "", fmt.Errorf("assistant call failed: %w", err)
	}
	return strings.TrimSpace(reply), nil
}

func buildChatPrompt(message string, history []models.ChatMessage) string {
	var sb strings.Builder
	sb.WriteString(systemPreamble)
	sb.WriteString("\n\n")

	for _, turn := range history {
		role := "User"
		if turn.Role == "assistant" {
			role = "Assistant"
		}
		fmt.Fprintf(&sb, "%s: %s\n", role, turn.Content)
	}

	fmt.Fprintf(&sb, "User: %s\nAssistant:", message)
	return sb.String()
}

// Ensure Service implements ChatService
var _ interfaces.ChatService = (*Service)(nil)
