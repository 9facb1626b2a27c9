package companysrv

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jinhyuk-lee/resumate/pkg/errx"
	"github.com/jinhyuk-lee/resumate/wizard/company"
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

func TestResearch_MissingCompany(t *testing.T) {
	completer := &fakeCompleter{text: "ok"}
	svc := NewService(completer)

	_, err := svc.Research(context.Background(), "   ")
	require.Error(t, err)
	assert.True(t, errx.IsCode(err, company.CodeMissingCompany))
	assert.Zero(t, completer.calls, "provider must not be called without a company name")
}

func TestResearch_Success(t *testing.T) {
	completer := &fakeCompleter{text: `{"companyName": "네이버"}`}
	svc := NewService(completer)

	result, err := svc.Research(context.Background(), " 네이버 ")
	require.NoError(t, err)
	assert.Equal(t, "네이버", result.Company)
	assert.Equal(t, `{"companyName": "네이버"}`, result.RawText)
	assert.False(t, result.GeneratedAt.IsZero())
	assert.Equal(t, 1, completer.calls)
}

func TestResearch_DemoMode(t *testing.T) {
	svc := NewService(nil)

	result, err := svc.Research(context.Background(), "카카오")
	require.NoError(t, err)
	assert.Contains(t, result.RawText, "카카오 기업 정보 조사 결과 (더미 데이터):")
	assert.Contains(t, result.RawText, "실제 서비스 이용 시에는 OpenAI API 키가 필요합니다")
}

func TestResearch_ProviderErrorFallsBack(t *testing.T) {
	completer := &fakeCompleter{err: errors.New("rate limited")}
	svc := NewService(completer)

	result, err := svc.Research(context.Background(), "네이버")
	require.NoError(t, err, "provider failures must not surface as errors")
	assert.Contains(t, result.RawText, "API 오류로 인해 더미 데이터가 표시되었습니다")
	assert.Equal(t, 1, completer.calls, "single attempt, no retry")
}

func TestResearch_EmptyProviderTextFallsBack(t *testing.T) {
	completer := &fakeCompleter{text: "  \n "}
	svc := NewService(completer)

	result, err := svc.Research(context.Background(), "네이버")
	require.NoError(t, err)
	assert.Contains(t, result.RawText, "더미 데이터")
}

func TestResearch_AlwaysNonEmpty(t *testing.T) {
	cases := []struct {
		name string
		svc  *Service
	}{
		{"demo mode", NewService(nil)},
		{"provider error", NewService(&fakeCompleter{err: errors.New("boom")})},
		{"empty text", NewService(&fakeCompleter{text: ""})},
		{"real text", NewService(&fakeCompleter{text: "조사 결과"})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := tc.svc.Research(context.Background(), "네이버")
			require.NoError(t, err)
			assert.NotEmpty(t, result.RawText)
		})
	}
}

func TestBuildResearchPrompt_ContainsCompany(t *testing.T) {
	prompt := buildResearchPrompt("토스")
	assert.Contains(t, prompt, "토스 기업의 채용 공고를 조사하여")
	assert.Contains(t, prompt, `"companyName"`)
}
