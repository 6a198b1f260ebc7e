package question

import "testing"

func TestNormalizeMarkers_Bold(t *testing.T) {
	got := NormalizeMarkers("##강조##")
	if got != "**강조**" {
		t.Errorf("expected '**강조**', got %q", got)
	}
}

func TestNormalizeMarkers_Table(t *testing.T) {
	got := NormalizeMarkers("<table>a\nb</table>")
	want := "\n```\na\nb\n```\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestNormalizeMarkers_TableCaseInsensitive(t *testing.T) {
	got := NormalizeMarkers("<TABLE>셀 내용</TABLE>")
	want := "\n```\n셀 내용\n```\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestNormalizeMarkers_Idempotent(t *testing.T) {
	tests := []string{
		"##볼드## 와 <table>표</table> 혼합",
		"마커 없는 평범한 문장! _밑줄_ 그대로",
		"**이미 변환된** 텍스트",
		"",
	}

	for _, text := range tests {
		once := NormalizeMarkers(text)
		twice := NormalizeMarkers(once)
		if once != twice {
			t.Errorf("not idempotent for %q: %q != %q", text, once, twice)
		}
	}
}

func TestNormalizeMarkers_LeavesOtherPunctuation(t *testing.T) {
	text := "느낌표! 물음표? _언더스코어_ 그리고 & 기호"
	if got := NormalizeMarkers(text); got != text {
		t.Errorf("expected unchanged text, got %q", got)
	}
}

func TestNormalizeMarkers_NoNesting(t *testing.T) {
	// 해시가 들어간 스팬은 볼드 마커로 취급하지 않는다.
	text := "####"
	if got := NormalizeMarkers(text); got != text {
		t.Errorf("expected unchanged text, got %q", got)
	}
}
