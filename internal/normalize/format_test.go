package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatText_PrefixRules(t *testing.T) {
	raw := "## 회사 소개\n### 채용 정보\n**중요**\n- 첫 항목\n*참고 사항*\n\n일반 문단입니다."

	blocks := FormatText(raw)
	require.Len(t, blocks, 7)

	assert.Equal(t, Block{Kind: BlockHeading2, Text: "회사 소개"}, blocks[0])
	assert.Equal(t, Block{Kind: BlockHeading3, Text: "채용 정보"}, blocks[1])
	assert.Equal(t, Block{Kind: BlockEmphasis, Text: "중요"}, blocks[2])
	assert.Equal(t, Block{Kind: BlockBullet, Text: "첫 항목"}, blocks[3])
	assert.Equal(t, Block{Kind: BlockNote, Text: "참고 사항"}, blocks[4])
	assert.Equal(t, Block{Kind: BlockBreak}, blocks[5])
	assert.Equal(t, Block{Kind: BlockParagraph, Text: "일반 문단입니다."}, blocks[6])
}

func TestFormatText_BoldBeatsNote(t *testing.T) {
	// "**text**" also starts and ends with a single '*'; the emphasis rule
	// must win over the note rule.
	blocks := FormatText("**강조된 줄**")
	require.Len(t, blocks, 1)
	assert.Equal(t, BlockEmphasis, blocks[0].Kind)
	assert.Equal(t, "강조된 줄", blocks[0].Text)
}

func TestFormatText_LinksDetected(t *testing.T) {
	blocks := FormatText("- 채용 공고: https://recruit.example.com/jobs 참고")
	require.Len(t, blocks, 1)
	assert.Equal(t, []string{"https://recruit.example.com/jobs"}, blocks[0].Links)
}

func TestFindLinks_MultipleAndParen(t *testing.T) {
	links := FindLinks("공식 사이트(https://example.com)와 http://jobs.example.com/list 를 참고하세요.")
	assert.Equal(t, []string{"https://example.com", "http://jobs.example.com/list"}, links)
}

func TestFindLinks_None(t *testing.T) {
	assert.Empty(t, FindLinks("링크가 없는 텍스트"))
}

func TestCompanyInfoText_Structured(t *testing.T) {
	raw := `{
		"companyName": "네이버",
		"companyIndustry": "IT",
		"companyDescription": "검색 포털 기업",
		"idealCandidateProfile": "주도적인 개발자"
	}`
	selected := &JobPosting{
		JobTitle:         "백엔드 개발자",
		Responsibilities: []string{"API 개발", "운영 자동화"},
		RequiredSkills:   []string{"Go", "Redis"},
	}

	text := CompanyInfoText("네이버", raw, selected)
	assert.Contains(t, text, "회사명: 네이버")
	assert.Contains(t, text, "업종: IT")
	assert.Contains(t, text, "[지원 직무 정보]")
	assert.Contains(t, text, "직무명: 백엔드 개발자")
	assert.Contains(t, text, "- API 개발")
	assert.Contains(t, text, "필요 기술: Go, Redis")
	// Unknown fields render as a dash.
	assert.Contains(t, text, "고용형태: -")
}

func TestCompanyInfoText_RawFallback(t *testing.T) {
	raw := "구조화되지 않은 조사 결과 텍스트"

	text := CompanyInfoText("카카오", raw, nil)
	assert.Contains(t, text, "회사명: 카카오")
	assert.Contains(t, text, raw)
}

func TestCompanyInfoText_NoSelectedJob(t *testing.T) {
	text := CompanyInfoText("네이버", `{"companyName": "네이버"}`, nil)
	assert.NotContains(t, text, "[지원 직무 정보]")
}
