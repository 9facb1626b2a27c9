// Package normalize derives structured records from free-form LLM output.
//
// The provider is prompted for JSON but the output format is not guaranteed:
// extraction is best-effort and every failure routes the caller to a plain
// text fallback instead of an error.
package normalize

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrNoStructuredRecord is reported when the raw text contains no parseable
// embedded JSON object. Callers switch to the text-formatter fallback.
var ErrNoStructuredRecord = errors.New("no structured record found")

// CompanyData is the structured company/job record the research prompt asks
// for. Every field is optional; the prompt contract uses "-" for unknowns.
type CompanyData struct {
	CompanyName           string       `json:"companyName,omitempty"`
	CompanyIndustry       string       `json:"companyIndustry,omitempty"`
	CompanySize           string       `json:"companySize,omitempty"`
	CompanyWebsite        string       `json:"companyWebsite,omitempty"`
	CompanyDescription    string       `json:"companyDescription,omitempty"`
	IdealCandidateProfile string       `json:"idealCandidateProfile,omitempty"`
	Jobs                  []JobPosting `json:"jobs,omitempty"`
	Source                []string     `json:"source,omitempty"`
}

// JobPosting is one opening inside CompanyData.Jobs
type JobPosting struct {
	JobTitle                string   `json:"jobTitle,omitempty"`
	JobCategory             string   `json:"jobCategory,omitempty"`
	HiringType              string   `json:"hiringType,omitempty"`
	NumberOfPositions       string   `json:"numberOfPositions,omitempty"`
	RecruitmentReason       string   `json:"recruitmentReason,omitempty"`
	Responsibilities        []string `json:"responsibilities,omitempty"`
	Qualifications          []string `json:"qualifications,omitempty"`
	PreferredQualifications []string `json:"preferredQualifications,omitempty"`
	RequiredSkills          []string `json:"requiredSkills,omitempty"`
	ApplicationStartDate    string   `json:"applicationStartDate,omitempty"`
	ApplicationEndDate      string   `json:"applicationEndDate,omitempty"`
	SelectionProcess        []string `json:"selectionProcess,omitempty"`
	InterviewDates          []string `json:"interviewDates,omitempty"`
	ResultAnnouncementDate  string   `json:"resultAnnouncementDate,omitempty"`
	WorkLocation            string   `json:"workLocation,omitempty"`
	WorkMode                string   `json:"workMode,omitempty"`
	WorkingHours            string   `json:"workingHours,omitempty"`
	SalaryRange             string   `json:"salaryRange,omitempty"`
	Benefits                []string `json:"benefits,omitempty"`
}

// ResumeQA is the question/answer payload the generation prompt asks for
type ResumeQA struct {
	Questions []string `json:"resumeQuestion"`
	Answers   []string `json:"resumeQuestionAnswer"`
}

// extractObject returns the outermost brace pair of the text: everything from
// the first '{' to the last '}'. Greedy on purpose, matching the prompt
// contract of a single top-level object.
func extractObject(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	if start < 0 {
		return "", false
	}
	end := strings.LastIndex(raw, "}")
	if end < start {
		return "", false
	}
	return raw[start : end+1], true
}

// ExtractCompanyData parses the embedded company record out of raw LLM text
func ExtractCompanyData(raw string) (*CompanyData, error) {
	obj, ok := extractObject(raw)
	if !ok {
		return nil, ErrNoStructuredRecord
	}
	var data CompanyData
	if err := json.Unmarshal([]byte(obj), &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoStructuredRecord, err)
	}
	return &data, nil
}

// ExtractResumeQA parses the embedded question/answer record out of raw LLM text
func ExtractResumeQA(raw string) (*ResumeQA, error) {
	obj, ok := extractObject(raw)
	if !ok {
		return nil, ErrNoStructuredRecord
	}
	var qa ResumeQA
	if err := json.Unmarshal([]byte(obj), &qa); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoStructuredRecord, err)
	}
	if len(qa.Questions) == 0 {
		return nil, fmt.Errorf("%w: record has no questions", ErrNoStructuredRecord)
	}
	return &qa, nil
}

// ResumeQAFromMarkdown reconstructs an approximate question/answer list from
// markdown-ish text: sections are split on "## " headings, the first line of
// each section is the question and the remainder is the answer.
//
// The heuristic assumes one heading per question. Output that deviates (extra
// headings, nested sections) will misalign questions and answers; that is an
// accepted limitation of the fallback path.
func ResumeQAFromMarkdown(raw string) *ResumeQA {
	qa := &ResumeQA{}
	for _, section := range strings.Split(raw, "## ") {
		if strings.TrimSpace(section) == "" {
			continue
		}
		lines := strings.SplitN(section, "\n", 2)
		question := strings.TrimSpace(lines[0])
		answer := ""
		if len(lines) > 1 {
			answer = strings.TrimSpace(lines[1])
		}
		qa.Questions = append(qa.Questions, question)
		qa.Answers = append(qa.Answers, answer)
	}
	return qa
}

// BuildResumeContent renders a ResumeQA back into "## question\n\nanswer"
// sections, the canonical content layout of a generated resume.
func BuildResumeContent(qa *ResumeQA) string {
	sections := make([]string, 0, len(qa.Questions))
	for i, question := range qa.Questions {
		answer := "답변이 없습니다."
		if i < len(qa.Answers) && qa.Answers[i] != "" {
			answer = qa.Answers[i]
		}
		sections = append(sections, "## "+question+"\n\n"+answer)
	}
	return strings.Join(sections, "\n\n")
}
