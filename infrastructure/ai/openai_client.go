// Package ai adapts the OpenAI chat API to the Summarizer port.
package ai

import (
	"context"
	"fmt"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

const (
	defaultModel     = "gpt-4o-mini"
	maxContentChars  = 5000
	maxSummaryTokens = 200
)

type SummarizerClient struct {
	client *openai.Client
	logger *logrus.Logger
	model  string
}

// NewSummarizerClient builds the client from the environment. A missing
// OPENAI_API_KEY is an error; callers treat it as "no summarizer" and run
// with the local fallback instead.
func NewSummarizerClient(logger *logrus.Logger) (*SummarizerClient, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = defaultModel
	}

	return &SummarizerClient{
		client: openai.NewClient(apiKey),
		logger: logger,
		model:  model,
	}, nil
}

// Summarize asks the model for a short plain-language synopsis of the
// page a run ended on.
func (c *SummarizerClient) Summarize(ctx context.Context, pageText, title, url string) (string, error) {
	content := strings.TrimSpace(pageText)
	if content == "" {
		return "", fmt.Errorf("no page content to summarize")
	}
	if len(content) > maxContentChars {
		content = content[:maxContentChars]
	}

	prompt := fmt.Sprintf(
		"Summarize the content of this web page in 2-3 plain sentences for a test report. "+
			"Focus on what the page shows, not on page chrome or navigation.\n\n"+
			"Title: %s\nURL: %s\n\nContent:\n%s",
		title, url, content)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: 0.2,
		MaxTokens:   maxSummaryTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You summarize web pages for automated test reports. Be factual and brief.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("summarization request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("summarization returned no choices")
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	c.logger.WithFields(logrus.Fields{
		"model": c.model,
		"chars": len(summary),
	}).Debug("page summary generated")
	return summary, nil
}
