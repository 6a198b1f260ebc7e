package question

import "regexp"

var (
	// ##...## 볼드 마커. 내부에 #이 없는 단일 수준 스팬만 대상.
	boldMarkerPattern = regexp.MustCompile(`##([^#]+)##`)

	// <table>...</table> 스팬 (대소문자 무시, 여러 줄 허용).
	tableMarkerPattern = regexp.MustCompile(`(?is)<table>(.*?)</table>`)
)

// NormalizeMarkers rewrites legacy inline formatting markers into their
// canonical form: ##text## becomes **text** and <table>...</table> becomes a
// fenced code block with the inner text kept verbatim. Text without markers
// passes through unchanged, so the rewrite is idempotent. Other punctuation
// is left alone; XML escaping happens later in the fragment builder.
func NormalizeMarkers(text string) string {
	text = boldMarkerPattern.ReplaceAllString(text, "**${1}**")
	text = tableMarkerPattern.ReplaceAllString(text, "\n```\n${1}\n```\n")
	return text
}
