// Package hwpx assembles HWPX documents by splicing generated paragraphs
// into a user-supplied template while preserving every other packaged
// resource byte-for-byte.
package hwpx

// Role identifies the semantic role of a generated paragraph.
type Role string

const (
	RoleSource      Role = "source"      // 출처
	RoleInstruction Role = "instruction" // 문제 지시문
	RoleStem        Role = "stem"        // 지문
	RoleOptions     Role = "options"     // 보기문
	RoleEndnote     Role = "endnote"     // 정답/해설 미주
)

// StyleProfile is the triple of template style slot ids one paragraph
// references. Values are never mutated after startup.
type StyleProfile struct {
	StyleID  int // styleIDRef
	ParaPrID int // paraPrIDRef
	CharPrID int // charPrIDRef
}

// 템플릿 스타일 매핑 (template.hwpx 기준)
// StyleShortcut0 → id=0 바탕글    (paraPr=0, charPr=11)
// StyleShortcut2 → id=1 원본문제풀이 (paraPr=1, charPr=19) → 출처
// StyleShortcut4 → id=3 문제       (paraPr=18, charPr=16) → 지시문
// StyleShortcut6 → id=5 본문       (paraPr=5, charPr=14)  → 지문
// StyleShortcut8 → id=7 보기문     (paraPr=14, charPr=16) → 선택지
// 미주 스타일    → id=17           (paraPr=15, charPr=8)  → 정답/해설
var styleTable = map[Role]StyleProfile{
	RoleSource:      {StyleID: 1, ParaPrID: 1, CharPrID: 19},
	RoleInstruction: {StyleID: 3, ParaPrID: 18, CharPrID: 16},
	RoleStem:        {StyleID: 5, ParaPrID: 5, CharPrID: 14},
	RoleOptions:     {StyleID: 7, ParaPrID: 14, CharPrID: 16},
	RoleEndnote:     {StyleID: 17, ParaPrID: 15, CharPrID: 8},
}

// StyleFor returns the style profile for a semantic role. The table is
// fixed; whether the uploaded template actually defines these slot ids is
// not checked here (the inspect command reports on that).
func StyleFor(role Role) StyleProfile {
	return styleTable[role]
}

// Roles returns every known role in emission order.
func Roles() []Role {
	return []Role{RoleSource, RoleInstruction, RoleStem, RoleOptions, RoleEndnote}
}
