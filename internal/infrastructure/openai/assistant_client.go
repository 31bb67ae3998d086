package openai

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"listed/internal/domain/service"
	"listed/pkg/errors"
)

const improvePrompt = "You polish startup funding pitch summaries. Rewrite the " +
	"user's project summary to be clear, concise and compelling for investors. " +
	"Keep every factual claim, do not invent numbers, and answer with the " +
	"improved summary only."

type assistantClient struct {
	client *openai.Client
	model  string
}

// NewAssistantClient wraps the OpenAI chat API behind the assistant boundary.
// One call per request, no retry; errors go straight back to the caller.
func NewAssistantClient(apiKey, model string) service.AssistantService {
	return &assistantClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *assistantClient) ImproveSummary(ctx context.Context, summary string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: improvePrompt},
			{Role: openai.ChatMessageRoleUser, Content: summary},
		},
	})
	if err != nil {
		return "", errors.Internal("Failed to improve summary", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.Internal("Assistant returned no result", nil)
	}

	return resp.Choices[0].Message.Content, nil
}
