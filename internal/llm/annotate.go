package llm

import (
	"context"
	"fmt"

	"github.com/roboco-io/exam2hwpx/internal/question"
)

// AnnotateMissing fills in answer/explanation for every record that has
// neither, leaving already-annotated records untouched. It returns the number
// of records annotated and the accumulated token usage. Records are processed
// in order; the first provider error aborts the run.
func AnnotateMissing(ctx context.Context, p Provider, records []question.Record, opts Options) (int, TokenUsage, error) {
	var usage TokenUsage
	annotated := 0

	for i := range records {
		if records[i].HasNote() {
			continue
		}

		ann, err := p.Annotate(ctx, records[i], opts)
		if err != nil {
			return annotated, usage, fmt.Errorf("문제 %d 해설 생성 실패: %w", i+1, err)
		}

		records[i].Answer = ann.Answer
		records[i].Explanation = ann.Explanation
		usage.InputTokens += ann.Usage.InputTokens
		usage.OutputTokens += ann.Usage.OutputTokens
		usage.TotalTokens += ann.Usage.TotalTokens
		annotated++
	}

	return annotated, usage, nil
}
