package hwpx

import (
	"fmt"
	"strings"

	"github.com/roboco-io/exam2hwpx/internal/question"
)

const (
	paragraphCloseTag = "</hp:p>"
	sectionCloseTag   = "</hs:sec>"
)

// Assembler splices question paragraphs into an HWPX template. A fresh
// Assembler should be used per conversion so paragraph ids stay independent
// across calls.
type Assembler struct {
	b *builder
}

// NewAssembler creates an assembler with a randomized paragraph id source.
func NewAssembler() *Assembler {
	return &Assembler{b: newBuilder()}
}

// Assemble converts questions into a new HWPX package based on the template.
//
// The template's section0.xml is decoded, everything up to and including the
// first complete paragraph (the layout/column configuration) is kept
// verbatim, generated paragraphs are appended after it, and the package is
// re-serialized with every other resource unchanged. title is kept for the
// conversion contract but is not embedded in the document.
func Assemble(template []byte, questions []question.Record, title string) ([]byte, error) {
	return NewAssembler().Assemble(template, questions, title)
}

// Assemble implements the conversion. See the package-level Assemble.
func (a *Assembler) Assemble(template []byte, questions []question.Record, title string) ([]byte, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyInput
	}

	switch DetectFormat(template) {
	case FormatHWP:
		if v, err := legacyVersion(template); err == nil {
			return nil, fmt.Errorf("%w: HWP %s 바이너리 형식은 지원하지 않습니다. 한글에서 .hwpx 형식으로 저장 후 다시 시도하세요", ErrInvalidTemplate, v)
		}
		return nil, fmt.Errorf("%w: HWP 5.x 바이너리 형식은 지원하지 않습니다. 한글에서 .hwpx 형식으로 저장 후 다시 시도하세요", ErrInvalidTemplate)
	case FormatUnknown:
		return nil, fmt.Errorf("%w: ZIP 패키지가 아닙니다", ErrInvalidTemplate)
	}

	container, err := OpenContainer(template)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTemplate, err)
	}

	section, ok := container.Read(SectionPath)
	if !ok {
		return nil, fmt.Errorf("%w: %s 리소스가 없습니다", ErrInvalidTemplate, SectionPath)
	}

	sectionText := string(section)
	end := strings.Index(sectionText, paragraphCloseTag)
	if end == -1 {
		return nil, fmt.Errorf("%w: section0.xml에 %s 태그가 없습니다", ErrInvalidTemplate, paragraphCloseTag)
	}

	// 구조 문단(컬럼/페이지 설정 포함)은 그대로 보존한다.
	var sb strings.Builder
	sb.WriteString(sectionText[:end+len(paragraphCloseTag)])

	currentSource := ""
	noteNum := 1

	for i, q := range questions {
		number := q.Number
		if number == 0 {
			number = i + 1
		}

		// 출처가 바뀔 때만 출처 문단 삽입
		if q.Source != "" && q.Source != currentSource {
			sb.WriteString(a.b.paragraph(q.Source, StyleFor(RoleSource)))
			currentSource = q.Source
		}

		parsed := question.Split(q.Text)
		instruction := question.NormalizeMarkers(parsed.Instruction)
		stem := question.NormalizeMarkers(parsed.Stem)
		options := question.NormalizeMarkers(parsed.Options)

		heading := fmt.Sprintf("%d.", number)
		if instruction != "" {
			heading = fmt.Sprintf("%d. %s", number, instruction)
		}

		if q.HasNote() {
			sb.WriteString(a.b.paragraphWithEndnote(
				heading, StyleFor(RoleInstruction),
				q.NoteText(), noteNum, StyleFor(RoleEndnote)))
			noteNum++
		} else {
			sb.WriteString(a.b.paragraph(heading, StyleFor(RoleInstruction)))
		}

		writeLines(&sb, a.b, stem, StyleFor(RoleStem))
		writeLines(&sb, a.b, options, StyleFor(RoleOptions))

		// 문제 사이 빈 문단 (간격)
		sb.WriteString(a.b.paragraph("", StyleFor(RoleStem)))
	}

	sb.WriteString(sectionCloseTag)

	container.Replace(SectionPath, []byte(sb.String()))
	return container.Bytes()
}

// writeLines emits one paragraph per non-empty line of a multi-line block.
func writeLines(sb *strings.Builder, b *builder, block string, style StyleProfile) {
	if block == "" {
		return
	}
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		sb.WriteString(b.paragraph(line, style))
	}
}
