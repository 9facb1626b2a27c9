package companysrv

import (
	"context"
	"strings"
	"time"

	"github.com/jinhyuk-lee/resumate/pkg/logx"
	"github.com/jinhyuk-lee/resumate/wizard/company"
)

// Service proxies company research requests to the LLM provider. Provider
// failures never propagate: the caller always gets usable research text,
// either real output or one of the canned fallbacks.
type Service struct {
	completer company.Completer
}

// NewService creates the research service. A nil completer puts the service
// in demo mode: canned text, no network calls.
func NewService(completer company.Completer) *Service {
	return &Service{completer: completer}
}

// Research looks up the company's job postings through the provider. The only
// error it returns is a missing company name; everything downstream resolves
// to fallback text.
func (s *Service) Research(ctx context.Context, companyName string) (*company.ResearchResult, error) {
	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		return nil, company.ErrMissingCompany()
	}

	result := &company.ResearchResult{
		Company:     companyName,
		GeneratedAt: time.Now(),
	}

	if s.completer == nil {
		logx.Infof("No provider credentials, returning demo research data for %q", companyName)
		result.RawText = demoFallback(companyName)
		return result, nil
	}

	logx.Infof("Researching company %q", companyName)
	text, err := s.completer.Complete(ctx, buildResearchPrompt(companyName))
	if err != nil {
		// Single attempt, then fallback. No retry.
		logx.Errorf("Company research failed for %q: %v", companyName, err)
		result.RawText = errorFallback(companyName)
		return result, nil
	}

	if strings.TrimSpace(text) == "" {
		logx.Warnf("Provider returned empty research text for %q, using fallback", companyName)
		result.RawText = errorFallback(companyName)
		return result, nil
	}

	logx.Infof("Company research completed for %q (%d bytes)", companyName, len(text))
	result.RawText = text
	return result, nil
}
