package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// ReportSummarizer condenses a worker's report texts into a short summary.
type ReportSummarizer interface {
	SummarizeReports(ctx context.Context, username, month string, reports []string) (string, error)
}

type AIService struct {
	client *openai.Client
}

func NewAIService(apiKey string) *AIService {
	return &AIService{
		client: openai.NewClient(apiKey),
	}
}

// NewAIServiceWithConfig allows pointing the client at another base URL.
func NewAIServiceWithConfig(cfg openai.ClientConfig) *AIService {
	return &AIService{
		client: openai.NewClientWithConfig(cfg),
	}
}

// SummarizeReports asks GPT for a manager-facing summary of the reports
func (s *AIService) SummarizeReports(ctx context.Context, username, month string, reports []string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("OpenAI client not initialized")
	}

	var b strings.Builder
	for i, r := range reports {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r)
	}

	prompt := fmt.Sprintf(`You summarize daily field reports for a site manager.

Worker: %s
Month: %s

Reports, oldest first:
%s
Write a short plain-text summary (at most five sentences) of the work done,
recurring problems, and anything the manager should follow up on.
Do not invent details that are not in the reports.`, username, month, b.String())

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4o,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.3,
		},
	)

	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
