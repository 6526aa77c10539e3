package service

import (
	"context"
	"devdosthub/internal/common"
	"strings"
)

// AIClient is the upstream generative-model client. Satisfied by
// ai.Client.
type AIClient interface {
	Configured() bool
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// systemPrompt frames every question before it is forwarded upstream.
const systemPrompt = "You are a helpful AI assistant for DevDostHub, a developer community platform. " +
	"Give clear, concise, and beginner-friendly answers about " +
	"technology, programming, cloud computing, AI/ML, and career advice. " +
	"Keep responses under 300 words unless the user asks for more detail. " +
	"IMPORTANT: Do NOT use any markdown formatting in your responses. " +
	"No asterisks, no hashtags, no bold/italic markers, no bullet symbols. " +
	"Use plain numbered lists (1. 2. 3.) and simple line breaks for structure. " +
	"Write in clean, readable plain text only."

type AIService struct {
	client AIClient
}

func NewAIService(client AIClient) *AIService {
	return &AIService{client: client}
}

// Ask forwards a question to the upstream model and returns its answer.
// Stateless: one attempt, no cache. Blank questions never reach upstream.
func (s *AIService) Ask(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", common.Errorf("please provide a question: %w", common.ErrInvalidInput)
	}

	if !s.client.Configured() {
		return "", common.Errorf("AI service is not configured: %w", common.ErrServiceUnavailable)
	}

	answer, err := s.client.GenerateContent(ctx, systemPrompt+"\n\nUser question: "+question)
	if err != nil {
		return "", err
	}
	if answer == "" {
		answer = "Sorry, I could not generate a response."
	}
	return answer, nil
}
