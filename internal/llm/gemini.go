package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/roboco-io/exam2hwpx/internal/question"
)

// Gemini annotates questions through the Google Gemini API.
// The genai client is bound to a context, so it is created per request.
type Gemini struct {
	apiKey string
	model  string
}

// NewGemini creates a Gemini provider. An empty model selects the default.
func NewGemini(apiKey, model string) *Gemini {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &Gemini{apiKey: apiKey, model: model}
}

// Name implements the Provider interface.
func (g *Gemini) Name() string { return "gemini" }

// Validate implements the Provider interface.
func (g *Gemini) Validate() error {
	if g.apiKey == "" {
		return fmt.Errorf("GOOGLE_API_KEY가 설정되지 않았습니다")
	}
	return nil
}

// Annotate implements the Provider interface.
func (g *Gemini) Annotate(ctx context.Context, rec question.Record, opts Options) (*Annotation, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("Gemini 클라이언트 생성 실패: %w", err)
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt(opts.Language), genai.RoleUser),
		Temperature:       genai.Ptr(float32(opts.Temperature)),
		MaxOutputTokens:   int32(opts.MaxTokens),
		ResponseMIMEType:  "application/json",
	}

	resp, err := client.Models.GenerateContent(ctx, g.model, genai.Text(buildPrompt(rec)), cfg)
	if err != nil {
		return nil, fmt.Errorf("Gemini 요청 실패: %w", err)
	}

	ann, err := parseAnnotation(resp.Text())
	if err != nil {
		return nil, err
	}
	ann.Model = g.model
	if resp.UsageMetadata != nil {
		ann.Usage = TokenUsage{
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:  int(resp.UsageMetadata.TotalTokenCount),
		}
	}
	return ann, nil
}
