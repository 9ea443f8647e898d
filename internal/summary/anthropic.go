package summary

import (
	"context"
	"errors"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	seal "github.com/xxy2000213-boop/huanre/internal/calc/seal"
)

const systemPrompt = "You are a rotating equipment engineer. Given the inputs and " +
	"results of a dry gas seal heat transfer calculation, write a short plain-text " +
	"assessment (3-5 sentences) of the flow regime and the computed coefficients. " +
	"Do not repeat the raw numbers back as a list."

// MessagesClient is the slice of the Anthropic SDK the summarizer needs.
// *sdk.MessageService satisfies it; tests substitute a mock.
type MessagesClient interface {
	New(ctx context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error)
}

// AnthropicSummarizer implements Summarizer on the Claude Messages API.
type AnthropicSummarizer struct {
	msg       MessagesClient
	model     string
	maxTokens int64
}

func NewAnthropic(msg MessagesClient, model string) (*AnthropicSummarizer, error) {
	if msg == nil {
		return nil, errors.New("messages client is required")
	}
	if model == "" {
		return nil, errors.New("model identifier is required")
	}
	return &AnthropicSummarizer{msg: msg, model: model, maxTokens: 1024}, nil
}

// NewAnthropicFromAPIKey builds a summarizer over the default HTTP client.
func NewAnthropicFromAPIKey(apiKey, model string) (*AnthropicSummarizer, error) {
	if apiKey == "" {
		return nil, errors.New("api key is required")
	}
	ac := sdk.NewClient(option.WithAPIKey(apiKey))
	return NewAnthropic(&ac.Messages, model)
}

func (s *AnthropicSummarizer) Summarize(ctx context.Context, in seal.Input, res seal.Result) (string, error) {
	msg, err := s.msg.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(s.model),
		MaxTokens: s.maxTokens,
		System:    []sdk.TextBlockParam{{Text: systemPrompt}},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(Prompt(in, res))),
		},
	})
	if err != nil {
		return "", &ExternalServiceError{Err: err}
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	text := strings.TrimSpace(b.String())
	if text == "" {
		return "", &ExternalServiceError{Err: errors.New("empty response")}
	}
	return text, nil
}
