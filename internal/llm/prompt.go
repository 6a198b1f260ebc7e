package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/roboco-io/exam2hwpx/internal/question"
)

func systemPrompt(language string) string {
	if language == "en" {
		return "You are an expert exam tutor. Given an exam question, respond with a JSON object " +
			`{"answer": "...", "explanation": "..."} containing the correct answer ` +
			"(the circled-numeral option where applicable) and a concise explanation. " +
			"Respond with JSON only."
	}
	return "당신은 기출문제 해설 전문가입니다. 주어진 문제에 대해 JSON 객체 " +
		`{"answer": "...", "explanation": "..."} 형식으로만 답하세요. ` +
		"answer에는 정답(객관식이면 해당 원문자 ①~⑩), explanation에는 간결한 해설을 넣으세요."
}

func buildPrompt(rec question.Record) string {
	var sb strings.Builder
	if rec.Source != "" {
		fmt.Fprintf(&sb, "[출처] %s\n", rec.Source)
	}
	if rec.Number != 0 {
		fmt.Fprintf(&sb, "[번호] %d\n", rec.Number)
	}
	sb.WriteString(rec.Text)
	return sb.String()
}

// parseAnnotation decodes the provider's JSON reply, tolerating markdown
// code fences around the object.
func parseAnnotation(reply string) (*Annotation, error) {
	reply = strings.TrimSpace(reply)
	reply = strings.TrimPrefix(reply, "```json")
	reply = strings.TrimPrefix(reply, "```")
	reply = strings.TrimSuffix(reply, "```")
	reply = strings.TrimSpace(reply)

	var ann Annotation
	if err := json.Unmarshal([]byte(reply), &ann); err != nil {
		return nil, fmt.Errorf("응답 JSON 파싱 실패: %w", err)
	}
	if ann.Answer == "" && ann.Explanation == "" {
		return nil, fmt.Errorf("응답에 answer/explanation이 없습니다")
	}
	return &ann, nil
}
