package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/roboco-io/exam2hwpx/internal/question"
)

// fakeProvider is a canned-response provider for tests.
type fakeProvider struct {
	name string
	ann  *Annotation
	err  error
}

func (f *fakeProvider) Name() string    { return f.name }
func (f *fakeProvider) Validate() error { return nil }
func (f *fakeProvider) Annotate(ctx context.Context, rec question.Record, opts Options) (*Annotation, error) {
	return f.ann, f.err
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(&fakeProvider{name: "openai"}); err != nil {
		t.Fatalf("unexpected register error: %v", err)
	}

	p, err := r.Get("openai")
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}
	if p.Name() != "openai" {
		t.Errorf("expected name 'openai', got %s", p.Name())
	}

	if _, err := r.Get("nonexistent"); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(&fakeProvider{name: "gemini"}); err != nil {
		t.Fatalf("unexpected register error: %v", err)
	}
	if err := r.Register(&fakeProvider{name: "gemini"}); err == nil {
		t.Error("expected error for duplicate registration")
	}
}

func TestRegistry_RejectsNilAndUnnamed(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(nil); err == nil {
		t.Error("expected error for nil provider")
	}
	if err := r.Register(&fakeProvider{name: ""}); err == nil {
		t.Error("expected error for empty provider name")
	}
}

func TestRegistry_List(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"openai", "anthropic", "gemini"} {
		if err := r.Register(&fakeProvider{name: name}); err != nil {
			t.Fatalf("unexpected register error: %v", err)
		}
	}

	names := r.List()
	want := []string{"anthropic", "gemini", "openai"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("expected names[%d]=%s, got %s", i, want[i], names[i])
		}
	}

	if !r.Has("gemini") {
		t.Error("expected Has('gemini') to be true")
	}
	if r.Has("ollama") {
		t.Error("expected Has('ollama') to be false")
	}
}

func TestAnnotateMissing(t *testing.T) {
	p := &fakeProvider{
		name: "fake",
		ann: &Annotation{
			Answer:      "③",
			Explanation: "생성된 해설",
			Usage:       TokenUsage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
		},
	}
	records := []question.Record{
		{Number: 1, Text: "문제1", Answer: "①"}, // 이미 정답 있음
		{Number: 2, Text: "문제2"},
		{Number: 3, Text: "문제3"},
	}

	annotated, usage, err := AnnotateMissing(context.Background(), p, records, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if annotated != 2 {
		t.Errorf("expected 2 annotated records, got %d", annotated)
	}
	if records[0].Answer != "①" {
		t.Error("existing answer must not be overwritten")
	}
	if records[1].Answer != "③" || records[1].Explanation != "생성된 해설" {
		t.Errorf("record 2 not annotated: %+v", records[1])
	}
	if usage.TotalTokens != 30 {
		t.Errorf("expected 30 total tokens, got %d", usage.TotalTokens)
	}
}

func TestAnnotateMissing_ProviderError(t *testing.T) {
	wantErr := errors.New("api down")
	p := &fakeProvider{name: "fake", err: wantErr}
	records := []question.Record{{Number: 1, Text: "문제"}}

	_, _, err := AnnotateMissing(context.Background(), p, records, DefaultOptions())
	if !errors.Is(err, wantErr) {
		t.Errorf("expected wrapped provider error, got %v", err)
	}
}

func TestParseAnnotation(t *testing.T) {
	tests := []struct {
		name    string
		reply   string
		wantErr bool
		answer  string
	}{
		{
			name:   "plain json",
			reply:  `{"answer": "②", "explanation": "이유"}`,
			answer: "②",
		},
		{
			name:   "fenced json",
			reply:  "```json\n{\"answer\": \"①\", \"explanation\": \"해설\"}\n```",
			answer: "①",
		},
		{
			name:    "not json",
			reply:   "그냥 텍스트 답변",
			wantErr: true,
		},
		{
			name:    "empty object",
			reply:   "{}",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ann, err := parseAnnotation(tc.reply)
			if tc.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ann.Answer != tc.answer {
				t.Errorf("expected answer %q, got %q", tc.answer, ann.Answer)
			}
		})
	}
}
