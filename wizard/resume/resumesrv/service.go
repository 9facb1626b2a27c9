package resumesrv

import (
	"context"
	"encoding/json"

	"github.com/jinhyuk-lee/resumate/internal/normalize"
	"github.com/jinhyuk-lee/resumate/pkg/logx"
	"github.com/jinhyuk-lee/resumate/wizard/resume"
)

const (
	demoAnswerSuffix  = "에 대한 답변입니다. 실제 서비스 이용 시에는 OpenAI API 키가 필요합니다."
	errorAnswerSuffix = "에 대한 답변입니다. API 오류로 인해 더미 데이터가 표시되었습니다."
)

// Service proxies resume generation requests to the LLM provider. Missing
// input is the one condition surfaced as an error; provider failures resolve
// to per-question placeholder answers.
type Service struct {
	completer resume.Completer
}

// NewService creates the generation service. A nil completer puts the service
// in demo mode: canned answers, no network calls.
func NewService(completer resume.Completer) *Service {
	return &Service{completer: completer}
}

// Generate produces the raw generation text for the request. The result may
// be empty when the provider returns no text; that is treated as success.
func (s *Service) Generate(ctx context.Context, req resume.GenerateRequest) (string, error) {
	if req.UserInfo.IsEmpty() || req.CompanyInfo == "" || len(req.ResumeQuestions) == 0 {
		return "", resume.ErrMissingInput()
	}

	if s.completer == nil {
		logx.Info("No provider credentials, returning demo resume data")
		return fallbackAnswers(req.ResumeQuestions, demoAnswerSuffix), nil
	}

	logx.Infof("Generating resume for %d questions", len(req.ResumeQuestions))
	text, err := s.completer.Complete(ctx, buildGeneratePrompt(req))
	if err != nil {
		logx.Errorf("Resume generation failed: %v", err)
		return fallbackAnswers(req.ResumeQuestions, errorAnswerSuffix), nil
	}

	logx.Infof("Resume generation completed (%d bytes)", len(text))
	return text, nil
}

// fallbackAnswers serializes one placeholder answer per question in the same
// JSON envelope the provider is prompted for.
func fallbackAnswers(questions []string, suffix string) string {
	qa := normalize.ResumeQA{
		Questions: questions,
		Answers:   make([]string, len(questions)),
	}
	for i, q := range questions {
		qa.Answers[i] = q + suffix
	}

	data, err := json.Marshal(qa)
	if err != nil {
		// Questions are plain strings; marshaling them cannot fail.
		return ""
	}
	return string(data)
}
