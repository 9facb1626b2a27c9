package session

import (
	"strings"
	"time"

	"github.com/jinhyuk-lee/resumate/internal/normalize"
	"github.com/jinhyuk-lee/resumate/pkg/kernel"
	"github.com/jinhyuk-lee/resumate/wizard/company"
	"github.com/jinhyuk-lee/resumate/wizard/resume"
)

// Step is a state of the wizard. The flow is strictly linear; the two
// loading steps auto-advance when their provider call completes.
type Step string

const (
	StepPersonalInfo   Step = "personal-info"
	StepResumeInfo     Step = "resume-info"
	StepCompanyLoading Step = "company-loading"
	StepCompanyInfo    Step = "company-info"
	StepResumeLoading  Step = "resume-loading"
	StepResumeResult   Step = "resume-result"
)

var stepOrder = []Step{
	StepPersonalInfo,
	StepResumeInfo,
	StepCompanyLoading,
	StepCompanyInfo,
	StepResumeLoading,
	StepResumeResult,
}

// Index returns the position of the step in the wizard flow, -1 for unknown steps
func (s Step) Index() int {
	for i, step := range stepOrder {
		if step == s {
			return i
		}
	}
	return -1
}

func (s Step) Valid() bool { return s.Index() >= 0 }

// DefaultResumeQuestions is applied when the user submits no custom questions
var DefaultResumeQuestions = []string{
	"지원동기를 작성해 주세요.",
	"성장과정을 작성해 주세요.",
	"본인의 성격의 장단점을 작성해 주세요.",
	"입사 후 포부를 작성해 주세요.",
}

// PersonalInfo holds the applicant's free-form career attributes
type PersonalInfo struct {
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Experiences []string `json:"experiences"`
	Skills      []string `json:"skills"`
	Educations  []string `json:"educations"`
	Awards      []string `json:"awards"`
}

// Filter drops empty and whitespace-only entries from every field
func (p PersonalInfo) Filter() PersonalInfo {
	return PersonalInfo{
		Strengths:   filterBlank(p.Strengths),
		Weaknesses:  filterBlank(p.Weaknesses),
		Experiences: filterBlank(p.Experiences),
		Skills:      filterBlank(p.Skills),
		Educations:  filterBlank(p.Educations),
		Awards:      filterBlank(p.Awards),
	}
}

// IsEmpty reports whether every field is empty after filtering
func (p PersonalInfo) IsEmpty() bool {
	return len(p.Strengths) == 0 && len(p.Weaknesses) == 0 &&
		len(p.Experiences) == 0 && len(p.Skills) == 0 &&
		len(p.Educations) == 0 && len(p.Awards) == 0
}

func filterBlank(items []string) []string {
	filtered := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			filtered = append(filtered, trimmed)
		}
	}
	return filtered
}

// ResumeInfo holds the target company and the custom resume questions
type ResumeInfo struct {
	Company   string   `json:"company"`
	Questions []string `json:"questions"`
}

// Session is the aggregate root of one wizard run. All later-stage fields
// stay nil until their stage's prerequisites are satisfied; the flow
// controller enforces this by redirecting instead of validating at read time.
type Session struct {
	ID   kernel.SessionID `json:"id"`
	Step Step             `json:"step"`

	PersonalInfo *PersonalInfo           `json:"personalInfo,omitempty"`
	ResumeInfo   *ResumeInfo             `json:"resumeInfo,omitempty"`
	Research     *company.ResearchResult `json:"research,omitempty"`
	SelectedJob  *normalize.JobPosting   `json:"selectedJob,omitempty"`
	Resume       *resume.GeneratedResume `json:"resume,omitempty"`

	IsGenerating bool `json:"isGenerating"`

	// Fired holds the one-shot latches of the auto-advancing steps, keyed by
	// step. Reset only by Reset, never by re-rendering or re-entry.
	Fired map[Step]bool `json:"fired,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// New creates a session at the initial step
func New(id kernel.SessionID) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		Step:      StepPersonalInfo,
		Fired:     make(map[Step]bool),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Reset returns the session to its initial empty state, latches included
func (s *Session) Reset() {
	s.Step = StepPersonalInfo
	s.PersonalInfo = nil
	s.ResumeInfo = nil
	s.Research = nil
	s.SelectedJob = nil
	s.Resume = nil
	s.IsGenerating = false
	s.Fired = make(map[Step]bool)
	s.UpdatedAt = time.Now()
}

// FireOnce sets the latch for the step and reports whether this call was the
// first. Callers trigger the step's side effect only on true.
func (s *Session) FireOnce(step Step) bool {
	if s.Fired == nil {
		s.Fired = make(map[Step]bool)
	}
	if s.Fired[step] {
		return false
	}
	s.Fired[step] = true
	return true
}

// HasFired reports whether the step's one-shot side effect already ran
func (s *Session) HasFired(step Step) bool {
	return s.Fired[step]
}

// Clone returns a deep copy safe to hand across goroutines
func (s *Session) Clone() *Session {
	clone := *s
	if s.PersonalInfo != nil {
		info := *s.PersonalInfo
		clone.PersonalInfo = &info
	}
	if s.ResumeInfo != nil {
		info := *s.ResumeInfo
		info.Questions = append([]string(nil), s.ResumeInfo.Questions...)
		clone.ResumeInfo = &info
	}
	if s.Research != nil {
		research := *s.Research
		clone.Research = &research
	}
	if s.SelectedJob != nil {
		job := *s.SelectedJob
		clone.SelectedJob = &job
	}
	if s.Resume != nil {
		generated := *s.Resume
		clone.Resume = &generated
	}
	clone.Fired = make(map[Step]bool, len(s.Fired))
	for k, v := range s.Fired {
		clone.Fired[k] = v
	}
	return &clone
}

// RedirectFor returns the step to enter instead of target when target's
// prerequisite chain is unsatisfied: the earliest step whose data is missing.
// Returns target itself when all prerequisites hold.
func (s *Session) RedirectFor(target Step) Step {
	switch target {
	case StepPersonalInfo:
		return StepPersonalInfo
	case StepResumeInfo:
		if s.PersonalInfo == nil {
			return StepPersonalInfo
		}
	case StepCompanyLoading:
		if s.PersonalInfo == nil {
			return StepPersonalInfo
		}
		if s.ResumeInfo == nil {
			return StepResumeInfo
		}
	case StepCompanyInfo:
		if s.PersonalInfo == nil {
			return StepPersonalInfo
		}
		if s.ResumeInfo == nil || s.Research == nil {
			return StepResumeInfo
		}
	case StepResumeLoading:
		if s.PersonalInfo == nil {
			return StepPersonalInfo
		}
		if s.ResumeInfo == nil || s.Research == nil {
			return StepResumeInfo
		}
		if s.SelectedJob == nil {
			return StepCompanyInfo
		}
	case StepResumeResult:
		// A missing result restarts the wizard from the top.
		if s.PersonalInfo == nil || s.Resume == nil {
			return StepPersonalInfo
		}
	}
	return target
}
