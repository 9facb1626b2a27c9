package resumesrv

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jinhyuk-lee/resumate/internal/normalize"
	"github.com/jinhyuk-lee/resumate/pkg/errx"
	"github.com/jinhyuk-lee/resumate/wizard/resume"
)

type fakeCompleter struct {
	text  string
	err   error
	calls int
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	f.calls++
	return f.text, f.err
}

func validRequest() resume.GenerateRequest {
	return resume.GenerateRequest{
		UserInfo: resume.UserInfo{
			Strengths:  "책임감, 꼼꼼함",
			Weaknesses: "완벽주의",
			Experience: "백엔드 개발 3년",
			Skills:     "Go, Redis",
			Education:  "컴퓨터공학 학사",
			Awards:     "-",
		},
		CompanyInfo:     "회사명: 네이버\n업종: IT",
		ResumeQuestions: []string{"지원동기를 작성해 주세요.", "입사 후 포부를 작성해 주세요."},
	}
}

func TestGenerate_MissingInput(t *testing.T) {
	completer := &fakeCompleter{text: "ok"}
	svc := NewService(completer)

	cases := []struct {
		name   string
		mutate func(*resume.GenerateRequest)
	}{
		{"empty user info", func(r *resume.GenerateRequest) { r.UserInfo = resume.UserInfo{} }},
		{"empty company info", func(r *resume.GenerateRequest) { r.CompanyInfo = "" }},
		{"no questions", func(r *resume.GenerateRequest) { r.ResumeQuestions = nil }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)

			_, err := svc.Generate(context.Background(), req)
			require.Error(t, err)
			assert.True(t, errx.IsCode(err, resume.CodeMissingInput))
		})
	}
	assert.Zero(t, completer.calls, "provider must not be called on invalid input")
}

func TestGenerate_Success(t *testing.T) {
	raw := `{"resumeQuestion": ["지원동기를 작성해 주세요."], "resumeQuestionAnswer": ["답변입니다."]}`
	completer := &fakeCompleter{text: raw}
	svc := NewService(completer)

	text, err := svc.Generate(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, raw, text)
	assert.Equal(t, 1, completer.calls)
}

func TestGenerate_EmptyProviderTextIsSuccess(t *testing.T) {
	svc := NewService(&fakeCompleter{text: ""})

	text, err := svc.Generate(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestGenerate_DemoModeAnswersEveryQuestion(t *testing.T) {
	svc := NewService(nil)
	req := validRequest()

	text, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)

	qa, err := normalize.ExtractResumeQA(text)
	require.NoError(t, err, "demo fallback must be a parseable payload")
	assert.Equal(t, req.ResumeQuestions, qa.Questions)
	require.Len(t, qa.Answers, len(req.ResumeQuestions))
	for i, answer := range qa.Answers {
		assert.Contains(t, answer, req.ResumeQuestions[i])
		assert.Contains(t, answer, "OpenAI API 키가 필요합니다")
	}
}

func TestGenerate_ProviderErrorFallsBack(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("timeout")}
	svc := NewService(completer)
	req := validRequest()

	text, err := svc.Generate(context.Background(), req)
	require.NoError(t, err, "provider failures must not surface as errors")
	assert.Equal(t, 1, completer.calls, "single attempt, no retry")

	qa, err := normalize.ExtractResumeQA(text)
	require.NoError(t, err)
	assert.Equal(t, req.ResumeQuestions, qa.Questions)
	assert.Contains(t, qa.Answers[0], "API 오류로 인해 더미 데이터가 표시되었습니다")
}

func TestBuildGeneratePrompt_NumbersQuestions(t *testing.T) {
	prompt := buildGeneratePrompt(validRequest())
	assert.Contains(t, prompt, "1. 지원동기를 작성해 주세요.")
	assert.Contains(t, prompt, "2. 입사 후 포부를 작성해 주세요.")
	assert.Contains(t, prompt, "장점: 책임감, 꼼꼼함")
	assert.Contains(t, prompt, "회사명: 네이버")
}
