// Package llm provides providers that fill in missing answers and
// explanations for exam questions before document assembly.
package llm

import (
	"context"

	"github.com/roboco-io/exam2hwpx/internal/question"
)

// Provider is the interface that all LLM providers must implement.
type Provider interface {
	// Name returns the provider identifier (e.g., "openai", "anthropic").
	Name() string

	// Annotate produces an answer and explanation for one question.
	Annotate(ctx context.Context, rec question.Record, opts Options) (*Annotation, error)

	// Validate checks if the provider is properly configured.
	Validate() error
}

// Options contains options for annotation requests.
type Options struct {
	Language    string  `json:"language,omitempty"`    // output language (e.g., "ko", "en")
	MaxTokens   int     `json:"max_tokens,omitempty"`  // maximum tokens for response
	Temperature float64 `json:"temperature,omitempty"` // creativity level (0.0 - 1.0)
}

// Annotation is the result of annotating one question.
type Annotation struct {
	Answer      string     `json:"answer"`
	Explanation string     `json:"explanation"`
	Usage       TokenUsage `json:"usage"`
	Model       string     `json:"model"`
}

// TokenUsage contains token usage statistics.
type TokenUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// DefaultOptions returns the default annotation options.
func DefaultOptions() Options {
	return Options{
		Language:    "ko",
		MaxTokens:   1024,
		Temperature: 0.3,
	}
}
