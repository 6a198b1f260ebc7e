package question

import "testing"

func TestHasNote(t *testing.T) {
	tests := []struct {
		name     string
		record   Record
		expected bool
	}{
		{"answer only", Record{Answer: "①"}, true},
		{"explanation only", Record{Explanation: "해설입니다"}, true},
		{"both", Record{Answer: "②", Explanation: "해설"}, true},
		{"neither", Record{Text: "[문제] 본문"}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.record.HasNote(); got != tc.expected {
				t.Errorf("HasNote() = %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestNoteText(t *testing.T) {
	tests := []struct {
		name     string
		record   Record
		expected string
	}{
		{"both", Record{Answer: "③", Explanation: "이유"}, "정답: ③ | 해설: 이유"},
		{"answer only", Record{Answer: "③"}, "정답: ③"},
		{"explanation only", Record{Explanation: "이유"}, "해설: 이유"},
		{"neither", Record{}, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.record.NoteText(); got != tc.expected {
				t.Errorf("NoteText() = %q, want %q", got, tc.expected)
			}
		})
	}
}

func TestDecodeRecords_BareArray(t *testing.T) {
	data := `[{"number": 1, "source": "2024년", "text": "본문"}]`

	records, err := DecodeRecords([]byte(data))
	if err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Number != 1 || records[0].Source != "2024년" {
		t.Errorf("unexpected record: %+v", records[0])
	}
}

func TestDecodeRecords_Wrapper(t *testing.T) {
	data := `{"questions": [{"number": 2, "text": "본문"}, {"number": 3, "text": "본문2"}]}`

	records, err := DecodeRecords([]byte(data))
	if err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[1].Number != 3 {
		t.Errorf("expected number 3, got %d", records[1].Number)
	}
}

func TestDecodeRecords_MissingFields(t *testing.T) {
	data := `[{"text": "정답 없는 문제"}]`

	records, err := DecodeRecords([]byte(data))
	if err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if records[0].HasNote() {
		t.Error("record without answer/explanation must not have a note")
	}
	if records[0].Number != 0 {
		t.Errorf("expected zero number, got %d", records[0].Number)
	}
}

func TestDecodeRecords_Invalid(t *testing.T) {
	if _, err := DecodeRecords([]byte(`{"questions": "not an array"`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
	if _, err := DecodeRecords([]byte(`"just a string"`)); err == nil {
		t.Error("expected error for non-question JSON")
	}
}
