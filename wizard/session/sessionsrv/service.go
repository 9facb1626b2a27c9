package sessionsrv

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jinhyuk-lee/resumate/internal/normalize"
	"github.com/jinhyuk-lee/resumate/pkg/kernel"
	"github.com/jinhyuk-lee/resumate/pkg/logx"
	"github.com/jinhyuk-lee/resumate/wizard/resume"
	"github.com/jinhyuk-lee/resumate/wizard/session"
)

const defaultWeaknesses = "완벽주의 성향으로 때로는 시간이 오래 걸릴 수 있지만, 일정 관리를 통해 개선하고 있습니다."

// Service is the wizard flow controller: a strict linear sequence of steps,
// each gated on the previous step's data. The two loading steps trigger their
// provider call at most once per entry and auto-advance on completion.
type Service struct {
	store      session.Store
	researcher session.Researcher
	generator  session.Generator

	// mu serializes session mutations so the one-shot latches are
	// checked-and-set atomically across concurrent requests.
	mu sync.Mutex
}

// NewService creates the flow controller
func NewService(store session.Store, researcher session.Researcher, generator session.Generator) *Service {
	return &Service{
		store:      store,
		researcher: researcher,
		generator:  generator,
	}
}

// CreateSession starts a new wizard run at the personal-info step
func (s *Service) CreateSession(ctx context.Context) (*session.Session, error) {
	sess := session.New(kernel.NewSessionID(uuid.NewString()))
	if err := s.store.Create(ctx, sess); err != nil {
		return nil, err
	}
	logx.Infof("Wizard session created: %s", sess.ID)
	return sess, nil
}

// GetSession retrieves a session by ID
func (s *Service) GetSession(ctx context.Context, id kernel.SessionID) (*session.Session, error) {
	return s.store.Get(ctx, id)
}

// GuardStep checks whether the session may enter the step. When a
// prerequisite is missing it returns the earliest unsatisfied step as the
// redirect target; otherwise it returns the step itself.
func (s *Service) GuardStep(ctx context.Context, id kernel.SessionID, step session.Step) (session.Step, error) {
	if !step.Valid() {
		return "", session.ErrInvalidStep().WithDetail("step", string(step))
	}
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return sess.RedirectFor(step), nil
}

// SubmitPersonalInfo validates and stores the personal-info step and advances
// to resume-info. Empty entries are filtered out before committing.
func (s *Service) SubmitPersonalInfo(ctx context.Context, id kernel.SessionID, req session.SubmitPersonalInfoRequest) (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	info := session.PersonalInfo{
		Strengths:   req.Strengths,
		Weaknesses:  req.Weaknesses,
		Experiences: req.Experiences,
		Skills:      req.Skills,
		Educations:  req.Educations,
		Awards:      req.Awards,
	}.Filter()
	if info.IsEmpty() {
		return nil, session.ErrInvalidData().WithDetail("reason", "personal info is empty")
	}

	sess.PersonalInfo = &info
	sess.Step = session.StepResumeInfo
	sess.UpdatedAt = time.Now()

	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// SubmitResumeInfo stores the target company and questions, enters
// company-loading and fires the research call. Empty question lists fall
// back to the default question set.
func (s *Service) SubmitResumeInfo(ctx context.Context, id kernel.SessionID, req session.SubmitResumeInfoRequest) (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if redirect := sess.RedirectFor(session.StepResumeInfo); redirect != session.StepResumeInfo {
		return nil, session.ErrPrerequisiteMissing().WithDetail("redirect", string(redirect))
	}

	companyName := strings.TrimSpace(req.Company)
	if companyName == "" {
		return nil, session.ErrInvalidData().WithDetail("reason", "company is required")
	}

	questions := filterQuestions(req.Questions)
	if len(questions) == 0 {
		questions = append([]string(nil), session.DefaultResumeQuestions...)
	}

	companyChanged := sess.ResumeInfo != nil && sess.ResumeInfo.Company != companyName
	sess.ResumeInfo = &session.ResumeInfo{
		Company:   companyName,
		Questions: questions,
	}

	// Resubmitting the same company keeps the computed research; only a new
	// target invalidates the data derived from the old one.
	if companyChanged {
		sess.Research = nil
		sess.SelectedJob = nil
		sess.Resume = nil
		delete(sess.Fired, session.StepCompanyLoading)
		delete(sess.Fired, session.StepResumeLoading)
	}
	sess.UpdatedAt = time.Now()

	return s.enterCompanyLoading(ctx, sess)
}

// StartResearch re-enters company-loading. The one-shot latch makes this
// idempotent: re-rendered loading views can call it any number of times while
// the research call is in flight.
func (s *Service) StartResearch(ctx context.Context, id kernel.SessionID) (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if redirect := sess.RedirectFor(session.StepCompanyLoading); redirect != session.StepCompanyLoading {
		return nil, session.ErrPrerequisiteMissing().WithDetail("redirect", string(redirect))
	}
	return s.enterCompanyLoading(ctx, sess)
}

// enterCompanyLoading moves the session into company-loading and fires the
// research call exactly once per entry. Caller holds s.mu.
func (s *Service) enterCompanyLoading(ctx context.Context, sess *session.Session) (*session.Session, error) {
	if sess.Research != nil {
		// Research already computed for this run: skip straight through.
		// Only an explicit reset clears it.
		sess.Step = session.StepCompanyInfo
		sess.UpdatedAt = time.Now()
		if err := s.store.Save(ctx, sess); err != nil {
			return nil, err
		}
		return sess, nil
	}

	sess.Step = session.StepCompanyLoading
	fired := sess.FireOnce(session.StepCompanyLoading)
	if fired {
		sess.IsGenerating = true
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}

	if fired {
		go s.runResearch(sess.ID, sess.ResumeInfo.Company)
	}
	return sess, nil
}

// runResearch executes the research call in the background and advances the
// session when it completes. Detached from the request context: navigating
// away does not cancel the call.
func (s *Service) runResearch(id kernel.SessionID, companyName string) {
	result, err := s.researcher.Research(context.Background(), companyName)
	if err != nil {
		// The researcher contract is to always resolve; an error here means
		// the company name vanished, which cannot happen mid-run.
		logx.Errorf("Research for session %s failed: %v", id, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.store.Get(context.Background(), id)
	if err != nil {
		logx.Warnf("Session %s gone before research completed", id)
		return
	}
	if !sess.HasFired(session.StepCompanyLoading) {
		// Session was reset while the call was in flight; drop the result.
		logx.Infof("Session %s reset during research, discarding result", id)
		return
	}
	if sess.ResumeInfo == nil || sess.ResumeInfo.Company != result.Company {
		// The target company changed mid-flight; a newer call owns the slot.
		logx.Infof("Session %s company changed during research, discarding result", id)
		return
	}

	sess.Research = result
	sess.IsGenerating = false
	if sess.Step == session.StepCompanyLoading {
		sess.Step = session.StepCompanyInfo
	}
	sess.UpdatedAt = time.Now()

	if err := s.store.Save(context.Background(), sess); err != nil {
		logx.Errorf("Failed to save research result for session %s: %v", id, err)
	}
}

// SelectJob records one posting out of the derived job list, by index
func (s *Service) SelectJob(ctx context.Context, id kernel.SessionID, jobIndex int) (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Research == nil {
		return nil, session.ErrResearchNotAvailable()
	}

	jobs := derivedJobs(sess.Research.RawText)
	if jobIndex < 0 || jobIndex >= len(jobs) {
		return nil, session.ErrInvalidJobSelection().
			WithDetail("job_index", jobIndex).
			WithDetail("job_count", len(jobs))
	}

	job := jobs[jobIndex]
	sess.SelectedJob = &job
	sess.UpdatedAt = time.Now()

	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// CreateResume enters resume-loading and fires the generation call exactly
// once per entry. Requires a selected job; with an empty derived job list the
// wizard cannot reach this transition.
func (s *Service) CreateResume(ctx context.Context, id kernel.SessionID) (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.SelectedJob == nil {
		return nil, session.ErrJobNotSelected()
	}
	if redirect := sess.RedirectFor(session.StepResumeLoading); redirect != session.StepResumeLoading {
		return nil, session.ErrPrerequisiteMissing().WithDetail("redirect", string(redirect))
	}

	sess.Step = session.StepResumeLoading
	fired := sess.FireOnce(session.StepResumeLoading)
	if fired {
		sess.IsGenerating = true
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}

	if fired {
		go s.runGeneration(sess.ID, buildGenerateRequest(sess), sess.ResumeInfo.Company)
	}
	return sess, nil
}

// runGeneration executes the generation call in the background, builds the
// final document and advances the session when it completes.
func (s *Service) runGeneration(id kernel.SessionID, req resume.GenerateRequest, companyName string) {
	raw, err := s.generator.Generate(context.Background(), req)
	if err != nil {
		// Inputs were assembled from a session that passed the guards, so a
		// MissingInput here is unreachable; log and keep the session usable.
		logx.Errorf("Generation for session %s failed: %v", id, err)
		raw = ""
	}

	generated := buildGeneratedResume(companyName, raw, req.ResumeQuestions)

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.store.Get(context.Background(), id)
	if err != nil {
		logx.Warnf("Session %s gone before generation completed", id)
		return
	}
	if !sess.HasFired(session.StepResumeLoading) {
		logx.Infof("Session %s reset during generation, discarding result", id)
		return
	}
	if sess.ResumeInfo == nil || sess.ResumeInfo.Company != companyName {
		logx.Infof("Session %s company changed during generation, discarding result", id)
		return
	}

	sess.Resume = generated
	sess.IsGenerating = false
	if sess.Step == session.StepResumeLoading {
		sess.Step = session.StepResumeResult
	}
	sess.UpdatedAt = time.Now()

	if err := s.store.Save(context.Background(), sess); err != nil {
		logx.Errorf("Failed to save generated resume for session %s: %v", id, err)
	}
}

// Back navigates to an earlier step without clearing any collected data
func (s *Service) Back(ctx context.Context, id kernel.SessionID, target session.Step) (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !target.Valid() {
		return nil, session.ErrInvalidStep().WithDetail("step", string(target))
	}
	if target.Index() > sess.Step.Index() {
		return nil, session.ErrBackwardOnly().
			WithDetail("current", string(sess.Step)).
			WithDetail("target", string(target))
	}

	sess.Step = target
	sess.UpdatedAt = time.Now()

	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Reset clears the session back to its initial state
func (s *Service) Reset(ctx context.Context, id kernel.SessionID) (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	sess.Reset()
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	logx.Infof("Wizard session reset: %s", sess.ID)
	return sess, nil
}

func filterQuestions(questions []string) []string {
	filtered := make([]string, 0, len(questions))
	for _, q := range questions {
		if trimmed := strings.TrimSpace(q); trimmed != "" {
			filtered = append(filtered, trimmed)
		}
	}
	return filtered
}

// derivedJobs re-parses the job list out of the raw research text. Parsing is
// idempotent and cheap, so the derived structure is never cached.
func derivedJobs(rawText string) []normalize.JobPosting {
	data, err := normalize.ExtractCompanyData(rawText)
	if err != nil {
		return nil
	}
	return data.Jobs
}

// buildGenerateRequest flattens the session's collected data into the
// generation request shape.
func buildGenerateRequest(sess *session.Session) resume.GenerateRequest {
	info := sess.PersonalInfo

	weaknesses := strings.Join(info.Weaknesses, ", ")
	if weaknesses == "" {
		weaknesses = defaultWeaknesses
	}
	awards := strings.Join(info.Awards, ", ")
	if awards == "" {
		awards = "-"
	}

	return resume.GenerateRequest{
		UserInfo: resume.UserInfo{
			Strengths:  strings.Join(info.Strengths, ", "),
			Weaknesses: weaknesses,
			Experience: strings.Join(info.Experiences, ", "),
			Skills:     strings.Join(info.Skills, ", "),
			Education:  strings.Join(info.Educations, ", "),
			Awards:     awards,
		},
		CompanyInfo:     normalize.CompanyInfoText(sess.ResumeInfo.Company, sess.Research.RawText, sess.SelectedJob),
		ResumeQuestions: append([]string(nil), sess.ResumeInfo.Questions...),
	}
}

// buildGeneratedResume normalizes the raw generation text into the final
// document. Extraction failures fall back to the markdown heuristic, then to
// per-question placeholders.
func buildGeneratedResume(companyName, raw string, questions []string) *resume.GeneratedResume {
	qa, err := normalize.ExtractResumeQA(raw)
	if err != nil {
		qa = normalize.ResumeQAFromMarkdown(raw)
		if len(qa.Questions) == 0 {
			qa = &normalize.ResumeQA{
				Questions: questions,
				Answers:   make([]string, len(questions)),
			}
			for i := range questions {
				qa.Answers[i] = "답변을 생성하는 중 오류가 발생했습니다. 다시 시도해 주세요."
			}
		}
	}

	content := normalize.BuildResumeContent(qa)
	if content == "" {
		content = "이력서 생성에 실패했습니다."
	}

	return &resume.GeneratedResume{
		Title:       companyName + " 지원 이력서",
		Content:     content,
		GeneratedAt: time.Now(),
	}
}
