package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/roboco-io/exam2hwpx/internal/question"
)

// OpenAI annotates questions through the OpenAI chat completion API.
type OpenAI struct {
	client *openai.Client
	apiKey string
	model  string
}

// NewOpenAI creates an OpenAI provider. An empty model selects the default.
func NewOpenAI(apiKey, model string) *OpenAI {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAI{
		client: openai.NewClient(apiKey),
		apiKey: apiKey,
		model:  model,
	}
}

// Name implements the Provider interface.
func (o *OpenAI) Name() string { return "openai" }

// Validate implements the Provider interface.
func (o *OpenAI) Validate() error {
	if o.apiKey == "" {
		return fmt.Errorf("OPENAI_API_KEY가 설정되지 않았습니다")
	}
	return nil
}

// Annotate implements the Provider interface.
func (o *OpenAI) Annotate(ctx context.Context, rec question.Record, opts Options) (*Annotation, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       o.model,
		Temperature: float32(opts.Temperature),
		MaxTokens:   opts.MaxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt(opts.Language)},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(rec)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("OpenAI 요청 실패: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("OpenAI 응답이 비어 있습니다")
	}

	ann, err := parseAnnotation(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	ann.Model = resp.Model
	ann.Usage = TokenUsage{
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		TotalTokens:  resp.Usage.TotalTokens,
	}
	return ann, nil
}
