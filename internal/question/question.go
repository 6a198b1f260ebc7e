// Package question defines exam-question records and the text heuristics
// that split raw question text into its semantic parts.
package question

import (
	"encoding/json"
	"fmt"
)

// Record represents a single exam question as received from the caller.
// Missing fields decode to zero values and are treated as absent, not as
// errors.
type Record struct {
	Number      int    `json:"number"`
	Source      string `json:"source"`
	Text        string `json:"text"`
	Answer      string `json:"answer"`
	Explanation string `json:"explanation"`
}

// Parsed holds the semantic parts of one question text.
// Stem and Options are multi-line blocks joined with "\n".
type Parsed struct {
	Instruction string `json:"instruction"`
	Stem        string `json:"stem"`
	Options     string `json:"options"`
}

// HasNote reports whether the record carries an answer or explanation
// that should become an endnote.
func (r Record) HasNote() bool {
	return r.Answer != "" || r.Explanation != ""
}

// NoteText joins answer and explanation into the endnote body.
func (r Record) NoteText() string {
	switch {
	case r.Answer != "" && r.Explanation != "":
		return "정답: " + r.Answer + " | " + "해설: " + r.Explanation
	case r.Answer != "":
		return "정답: " + r.Answer
	case r.Explanation != "":
		return "해설: " + r.Explanation
	default:
		return ""
	}
}

// DecodeRecords parses a JSON document holding questions.
// Both a bare array and a {"questions": [...]} wrapper are accepted.
func DecodeRecords(data []byte) ([]Record, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err == nil {
		return records, nil
	}

	var wrapper struct {
		Questions []Record `json:"questions"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("문제 JSON 파싱 실패: %w", err)
	}
	return wrapper.Questions, nil
}
