package hwpx

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// 문단 id 범위. HWPX 뷰어는 문서 내 유일성만 요구한다.
const (
	idMin = 100000000
	idMax = 2147483647
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// builder emits HWPX paragraph XML fragments. The id source is a field so
// tests can substitute a deterministic counter.
type builder struct {
	nextID func() string
}

func newBuilder() *builder {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &builder{
		nextID: func() string {
			return fmt.Sprintf("%d", rng.Int63n(idMax-idMin+1)+idMin)
		},
	}
}

// paragraph builds a single <hp:p> fragment. Each non-empty line of text
// becomes one run inside the paragraph; a paragraph is never run-less.
func (b *builder) paragraph(text string, style StyleProfile) string {
	var runs strings.Builder
	for _, line := range strings.Split(xmlEscaper.Replace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fmt.Fprintf(&runs, `<hp:run charPrIDRef="%d"><hp:t>%s</hp:t></hp:run>`, style.CharPrID, line)
	}
	if runs.Len() == 0 {
		fmt.Fprintf(&runs, `<hp:run charPrIDRef="%d"><hp:t/></hp:run>`, style.CharPrID)
	}

	return fmt.Sprintf(
		`<hp:p id="%s" paraPrIDRef="%d" styleIDRef="%d" pageBreak="0" columnBreak="0" merged="0">%s</hp:p>`,
		b.nextID(), style.ParaPrID, style.StyleID, runs.String())
}

// paragraphWithEndnote builds a paragraph whose last run carries an endnote
// holding the answer/explanation text. noteNum is the document-wide endnote
// sequence number maintained by the caller.
func (b *builder) paragraphWithEndnote(text string, style StyleProfile, noteText string, noteNum int, noteStyle StyleProfile) string {
	var sb strings.Builder

	fmt.Fprintf(&sb,
		`<hp:p id="%s" paraPrIDRef="%d" styleIDRef="%d" pageBreak="0" columnBreak="0" merged="0">`,
		b.nextID(), style.ParaPrID, style.StyleID)
	fmt.Fprintf(&sb,
		`<hp:run charPrIDRef="%d"><hp:t>%s</hp:t></hp:run>`,
		style.CharPrID, xmlEscaper.Replace(text))

	fmt.Fprintf(&sb, `<hp:run charPrIDRef="%d"><hp:ctrl>`, style.CharPrID)
	fmt.Fprintf(&sb, `<hp:endNote id="%s" number="%d">`, b.nextID(), noteNum)
	fmt.Fprintf(&sb,
		`<hp:subList id="%s" textDirection="HORIZONTAL" lineWrap="BREAK" vertAlign="TOP" linkListIDRef="0" linkListNextIDRef="0" textWidth="0" textHeight="0" hasTextRef="0" hasNumRef="0">`,
		b.nextID())
	fmt.Fprintf(&sb,
		`<hp:p id="%s" paraPrIDRef="%d" styleIDRef="%d" pageBreak="0" columnBreak="0" merged="0">`,
		b.nextID(), noteStyle.ParaPrID, noteStyle.StyleID)
	fmt.Fprintf(&sb,
		`<hp:run charPrIDRef="%d"><hp:t>%s</hp:t></hp:run>`,
		noteStyle.CharPrID, xmlEscaper.Replace(noteText))
	sb.WriteString(`</hp:p></hp:subList></hp:endNote></hp:ctrl></hp:run></hp:p>`)

	return sb.String()
}
