package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/roboco-io/exam2hwpx/internal/question"
)

// Anthropic annotates questions through the Anthropic Messages API.
type Anthropic struct {
	client anthropic.Client
	apiKey string
	model  string
}

// NewAnthropic creates an Anthropic provider. An empty model selects the default.
func NewAnthropic(apiKey, model string) *Anthropic {
	if model == "" {
		model = "claude-sonnet-4-20250514"
	}
	return &Anthropic{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		apiKey: apiKey,
		model:  model,
	}
}

// Name implements the Provider interface.
func (a *Anthropic) Name() string { return "anthropic" }

// Validate implements the Provider interface.
func (a *Anthropic) Validate() error {
	if a.apiKey == "" {
		return fmt.Errorf("ANTHROPIC_API_KEY가 설정되지 않았습니다")
	}
	return nil
}

// Annotate implements the Provider interface.
func (a *Anthropic) Annotate(ctx context.Context, rec question.Record, opts Options) (*Annotation, error) {
	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(a.model),
		MaxTokens:   int64(opts.MaxTokens),
		Temperature: anthropic.Float(opts.Temperature),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt(opts.Language)},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(rec))),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("Anthropic 요청 실패: %w", err)
	}

	var reply strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			reply.WriteString(block.Text)
		}
	}

	ann, err := parseAnnotation(reply.String())
	if err != nil {
		return nil, err
	}
	ann.Model = string(msg.Model)
	ann.Usage = TokenUsage{
		InputTokens:  int(msg.Usage.InputTokens),
		OutputTokens: int(msg.Usage.OutputTokens),
		TotalTokens:  int(msg.Usage.InputTokens + msg.Usage.OutputTokens),
	}
	return ann, nil
}
