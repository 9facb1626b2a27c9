package normalize

import (
	"regexp"
	"strings"
)

// BlockKind distinguishes the display blocks the text formatter emits
type BlockKind string

const (
	BlockHeading2  BlockKind = "heading2"
	BlockHeading3  BlockKind = "heading3"
	BlockEmphasis  BlockKind = "emphasis"
	BlockBullet    BlockKind = "bullet"
	BlockNote      BlockKind = "note"
	BlockBreak     BlockKind = "break"
	BlockParagraph BlockKind = "paragraph"
)

// Block is one display unit of the fallback renderer. Links lists URL-shaped
// substrings found in Text so renderers can mark them as hyperlinks.
type Block struct {
	Kind  BlockKind `json:"kind"`
	Text  string    `json:"text,omitempty"`
	Links []string  `json:"links,omitempty"`
}

var urlPattern = regexp.MustCompile(`https?://[^\s)]+`)

// FindLinks returns every URL-shaped substring of text, in order
func FindLinks(text string) []string {
	return urlPattern.FindAllString(text, -1)
}

// FormatText is the fallback renderer for raw text with no parseable
// structured record. It processes the text one line at a time with a small
// set of prefix rules; order-preserving, single pass.
func FormatText(raw string) []Block {
	lines := strings.Split(raw, "\n")
	blocks := make([]Block, 0, len(lines))
	for _, line := range lines {
		blocks = append(blocks, formatLine(line))
	}
	return blocks
}

func formatLine(line string) Block {
	switch {
	case strings.HasPrefix(line, "## "):
		return newBlock(BlockHeading2, line[3:])
	case strings.HasPrefix(line, "### "):
		return newBlock(BlockHeading3, line[4:])
	case strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**") && len(line) >= 4:
		return newBlock(BlockEmphasis, line[2:len(line)-2])
	case strings.HasPrefix(line, "- "):
		return newBlock(BlockBullet, line[2:])
	case strings.HasPrefix(line, "*") && strings.HasSuffix(line, "*") && len(line) >= 2 && !strings.HasPrefix(line, "**"):
		return newBlock(BlockNote, line[1:len(line)-1])
	case strings.TrimSpace(line) == "":
		return Block{Kind: BlockBreak}
	default:
		return newBlock(BlockParagraph, line)
	}
}

func newBlock(kind BlockKind, text string) Block {
	return Block{Kind: kind, Text: text, Links: FindLinks(text)}
}

// CompanyInfoText builds the plain-text company digest that goes into the
// resume generation prompt: the structured fields when the research output
// parses, the raw text when it does not, plus the selected posting.
func CompanyInfoText(company, rawText string, selected *JobPosting) string {
	var b strings.Builder
	b.WriteString("회사명: " + company + "\n")

	data, err := ExtractCompanyData(rawText)
	if err != nil {
		// Parse failure: hand the raw research text to the model as-is.
		b.WriteString(rawText)
		return b.String()
	}

	writeField(&b, "회사명", data.CompanyName)
	writeField(&b, "업종", data.CompanyIndustry)
	writeField(&b, "기업 규모", data.CompanySize)
	writeField(&b, "회사 소개", data.CompanyDescription)
	writeField(&b, "이상적인 인재상", data.IdealCandidateProfile)

	if selected != nil {
		b.WriteString("\n[지원 직무 정보]\n")
		b.WriteString("직무명: " + orDash(selected.JobTitle) + "\n")
		b.WriteString("직무 카테고리: " + orDash(selected.JobCategory) + "\n")
		b.WriteString("고용형태: " + orDash(selected.HiringType) + "\n")
		b.WriteString("근무지: " + orDash(selected.WorkLocation) + "\n")
		b.WriteString("근무형태: " + orDash(selected.WorkMode) + "\n")
		b.WriteString("급여: " + orDash(selected.SalaryRange) + "\n")
		writeList(&b, "주요 업무:", selected.Responsibilities)
		writeList(&b, "자격 요건:", selected.Qualifications)
		writeList(&b, "우대 사항:", selected.PreferredQualifications)
		if len(selected.RequiredSkills) > 0 {
			b.WriteString("필요 기술: " + strings.Join(selected.RequiredSkills, ", ") + "\n")
		}
	}
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	if value != "" {
		b.WriteString(label + ": " + value + "\n")
	}
}

func writeList(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString(label + "\n")
	for _, item := range items {
		b.WriteString("- " + item + "\n")
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
