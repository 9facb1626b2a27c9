package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jinhyuk-lee/resumate/internal/normalize"
	"github.com/jinhyuk-lee/resumate/pkg/kernel"
	"github.com/jinhyuk-lee/resumate/wizard/company"
	"github.com/jinhyuk-lee/resumate/wizard/resume"
)

func TestStep_Index(t *testing.T) {
	assert.Equal(t, 0, StepPersonalInfo.Index())
	assert.Equal(t, 5, StepResumeResult.Index())
	assert.Equal(t, -1, Step("unknown").Index())
	assert.True(t, StepCompanyLoading.Valid())
	assert.False(t, Step("").Valid())
}

func TestPersonalInfo_Filter(t *testing.T) {
	info := PersonalInfo{
		Strengths: []string{"  책임감  ", "", "   "},
		Skills:    []string{"Go"},
	}.Filter()

	assert.Equal(t, []string{"책임감"}, info.Strengths)
	assert.Equal(t, []string{"Go"}, info.Skills)
	assert.Empty(t, info.Weaknesses)
	assert.False(t, info.IsEmpty())
}

func TestPersonalInfo_IsEmpty(t *testing.T) {
	assert.True(t, PersonalInfo{}.IsEmpty())
	assert.True(t, PersonalInfo{Awards: []string{" ", ""}}.Filter().IsEmpty())
	assert.False(t, PersonalInfo{Educations: []string{"학사"}}.IsEmpty())
}

func TestSession_FireOnce(t *testing.T) {
	sess := New(kernel.SessionID("s1"))

	assert.True(t, sess.FireOnce(StepCompanyLoading), "first call fires")
	assert.False(t, sess.FireOnce(StepCompanyLoading), "second call does not")
	assert.True(t, sess.HasFired(StepCompanyLoading))
	assert.False(t, sess.HasFired(StepResumeLoading))

	// Independent latch per step.
	assert.True(t, sess.FireOnce(StepResumeLoading))
}

func TestSession_ResetClearsLatches(t *testing.T) {
	sess := New(kernel.SessionID("s1"))
	sess.PersonalInfo = &PersonalInfo{Skills: []string{"Go"}}
	sess.Research = &company.ResearchResult{Company: "네이버", RawText: "text"}
	sess.Resume = &resume.GeneratedResume{Title: "이력서"}
	sess.FireOnce(StepCompanyLoading)
	sess.IsGenerating = true

	sess.Reset()

	assert.Equal(t, StepPersonalInfo, sess.Step)
	assert.Nil(t, sess.PersonalInfo)
	assert.Nil(t, sess.Research)
	assert.Nil(t, sess.Resume)
	assert.False(t, sess.IsGenerating)
	assert.False(t, sess.HasFired(StepCompanyLoading))
	assert.True(t, sess.FireOnce(StepCompanyLoading), "latch fires again after reset")
}

func TestSession_CloneIsIndependent(t *testing.T) {
	sess := New(kernel.SessionID("s1"))
	sess.ResumeInfo = &ResumeInfo{Company: "네이버", Questions: []string{"q1"}}
	sess.FireOnce(StepCompanyLoading)

	clone := sess.Clone()
	clone.ResumeInfo.Company = "카카오"
	clone.ResumeInfo.Questions[0] = "changed"
	clone.Fired[StepResumeLoading] = true

	assert.Equal(t, "네이버", sess.ResumeInfo.Company)
	assert.Equal(t, "q1", sess.ResumeInfo.Questions[0])
	assert.False(t, sess.HasFired(StepResumeLoading))
}

func TestSession_RedirectFor(t *testing.T) {
	sess := New(kernel.SessionID("s1"))

	// Fresh session: everything past the first step redirects.
	assert.Equal(t, StepPersonalInfo, sess.RedirectFor(StepPersonalInfo))
	assert.Equal(t, StepPersonalInfo, sess.RedirectFor(StepResumeInfo))
	assert.Equal(t, StepPersonalInfo, sess.RedirectFor(StepCompanyInfo))
	assert.Equal(t, StepPersonalInfo, sess.RedirectFor(StepResumeResult))

	sess.PersonalInfo = &PersonalInfo{Skills: []string{"Go"}}
	assert.Equal(t, StepResumeInfo, sess.RedirectFor(StepResumeInfo))
	assert.Equal(t, StepResumeInfo, sess.RedirectFor(StepCompanyLoading))
	assert.Equal(t, StepResumeInfo, sess.RedirectFor(StepCompanyInfo),
		"company info requires research, not just the company name")

	sess.ResumeInfo = &ResumeInfo{Company: "네이버", Questions: DefaultResumeQuestions}
	assert.Equal(t, StepCompanyLoading, sess.RedirectFor(StepCompanyLoading))
	assert.Equal(t, StepResumeInfo, sess.RedirectFor(StepCompanyInfo))

	sess.Research = &company.ResearchResult{Company: "네이버", RawText: "text"}
	assert.Equal(t, StepCompanyInfo, sess.RedirectFor(StepCompanyInfo))
	assert.Equal(t, StepCompanyInfo, sess.RedirectFor(StepResumeLoading),
		"resume loading requires a selected job")

	sess.SelectedJob = &normalize.JobPosting{JobTitle: "백엔드 개발자"}
	assert.Equal(t, StepResumeLoading, sess.RedirectFor(StepResumeLoading))

	// Missing result restarts from the top.
	assert.Equal(t, StepPersonalInfo, sess.RedirectFor(StepResumeResult))
	sess.Resume = &resume.GeneratedResume{Title: "이력서", Content: "내용"}
	assert.Equal(t, StepResumeResult, sess.RedirectFor(StepResumeResult))
}
