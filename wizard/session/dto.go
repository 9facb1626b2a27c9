package session

import (
	"time"

	"github.com/jinhyuk-lee/resumate/internal/normalize"
	"github.com/jinhyuk-lee/resumate/pkg/kernel"
)

// ============================================================================
// Request DTOs
// ============================================================================

// SubmitPersonalInfoRequest - Personal info step submission
type SubmitPersonalInfoRequest struct {
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Experiences []string `json:"experiences"`
	Skills      []string `json:"skills"`
	Educations  []string `json:"educations"`
	Awards      []string `json:"awards"`
}

// SubmitResumeInfoRequest - Target company step submission. Empty questions
// fall back to the default question set.
type SubmitResumeInfoRequest struct {
	Company   string   `json:"company" validate:"required"`
	Questions []string `json:"questions"`
}

// SelectJobRequest - Pick one posting out of the derived job list. Postings
// have no stable id, so selection is by index into the derived list.
type SelectJobRequest struct {
	JobIndex *int `json:"jobIndex" validate:"required"`
}

// BackRequest - Backward navigation target
type BackRequest struct {
	Step Step `json:"step" validate:"required"`
}

// ============================================================================
// Response DTOs
// ============================================================================

// SessionResponse - Session state as seen by the wizard client
type SessionResponse struct {
	ID           kernel.SessionID `json:"id"`
	Step         Step             `json:"step"`
	IsGenerating bool             `json:"isGenerating"`

	PersonalInfo *PersonalInfo `json:"personalInfo,omitempty"`
	ResumeInfo   *ResumeInfo   `json:"resumeInfo,omitempty"`

	HasResearch bool `json:"hasResearch"`
	HasResume   bool `json:"hasResume"`

	SelectedJob *normalize.JobPosting `json:"selectedJob,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GuardResponse - Outcome of a step guard check. Redirect is empty when the
// step may be entered.
type GuardResponse struct {
	Step     Step `json:"step"`
	Redirect Step `json:"redirect,omitempty"`
}

// CompanyViewResponse - Research output prepared for display: the structured
// record when the raw text parses, the formatted text blocks when it does not.
type CompanyViewResponse struct {
	Company     string                 `json:"company"`
	GeneratedAt time.Time              `json:"generatedAt"`
	Structured  *normalize.CompanyData `json:"structured,omitempty"`
	Blocks      []normalize.Block      `json:"blocks,omitempty"`
	Jobs        []normalize.JobPosting `json:"jobs"`
	SelectedJob *normalize.JobPosting  `json:"selectedJob,omitempty"`
	RawText     string                 `json:"rawText"`
}

// ResumeViewResponse - Generated resume prepared for display
type ResumeViewResponse struct {
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Questions   []string  `json:"questions"`
	Answers     []string  `json:"answers"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// ToSessionResponse converts a Session to its client representation
func ToSessionResponse(s *Session) *SessionResponse {
	return &SessionResponse{
		ID:           s.ID,
		Step:         s.Step,
		IsGenerating: s.IsGenerating,
		PersonalInfo: s.PersonalInfo,
		ResumeInfo:   s.ResumeInfo,
		HasResearch:  s.Research != nil,
		HasResume:    s.Resume != nil,
		SelectedJob:  s.SelectedJob,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
