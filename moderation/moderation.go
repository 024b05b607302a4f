package moderation

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Checker runs a lightweight OpenAI pass over user submissions before
// they are posted. The verdict is advisory only: it is logged alongside
// the submission and never blocks it.
type Checker struct {
	client *openai.Client
}

// NewChecker returns nil when no API key is configured, which disables
// the check entirely.
func NewChecker(apiKey string) *Checker {
	if apiKey == "" {
		return nil
	}
	return &Checker{client: openai.NewClient(apiKey)}
}

// Review asks the model whether the article text looks like news or
// spam/abuse and returns the one-word verdict.
func (m *Checker) Review(ctx context.Context, title, summary string) (string, error) {
	if m == nil {
		return "", nil
	}

	resp, err := m.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT3Dot5Turbo,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You review user-submitted news articles. Answer with exactly one word: NEWS, SPAM, or ABUSE.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: fmt.Sprintf("Title: %s\nSummary: %s", title, summary),
				},
			},
			MaxTokens: 5,
		},
	)
	if err != nil {
		return "", err
	}

	verdict := strings.TrimSpace(resp.Choices[0].Message.Content)
	log.Printf("Moderation verdict for %q: %s", title, verdict)
	return verdict, nil
}
