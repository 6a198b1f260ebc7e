package question

import (
	"regexp"
	"strings"
)

var (
	// [정답]/[해설] 뒤의 내용은 answer/explanation 필드로 별도 전달되므로
	// 본문에서 잘라낸다 (여러 줄 포함).
	answerTailPattern      = regexp.MustCompile(`(?s)\[정답\].*`)
	explanationTailPattern = regexp.MustCompile(`(?s)\[해설\].*`)

	instructionMarkerPattern = regexp.MustCompile(`\[문제\]\s*`)

	// 원문자 ①~⑩로 시작하는 줄부터 보기문이 시작된다.
	optionStartPattern = regexp.MustCompile(`^[①②③④⑤⑥⑦⑧⑨⑩]`)
)

// Split separates one raw question text into instruction, stem and options.
//
// The answer/explanation tail sections are removed first. If the first
// non-empty line carries a [문제] marker, the rest of that line becomes the
// instruction. Remaining lines belong to the stem until the first line that
// starts with a circled numeral; from that line on, every line (circled or
// not) belongs to the options.
func Split(text string) Parsed {
	text = strings.TrimSpace(answerTailPattern.ReplaceAllString(text, ""))
	text = strings.TrimSpace(explanationTailPattern.ReplaceAllString(text, ""))

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return Parsed{}
	}

	var parsed Parsed
	start := 0
	if strings.Contains(lines[0], "[문제]") {
		parsed.Instruction = strings.TrimSpace(instructionMarkerPattern.ReplaceAllString(lines[0], ""))
		start = 1
	}

	var stemLines, optionLines []string
	optionsStarted := false
	for _, line := range lines[start:] {
		if !optionsStarted && optionStartPattern.MatchString(line) {
			optionsStarted = true
		}
		if optionsStarted {
			optionLines = append(optionLines, line)
		} else {
			stemLines = append(stemLines, line)
		}
	}

	parsed.Stem = strings.Join(stemLines, "\n")
	parsed.Options = strings.Join(optionLines, "\n")
	return parsed
}
