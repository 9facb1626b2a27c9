package sessionsrv

import (
	"context"

	"github.com/jinhyuk-lee/resumate/internal/normalize"
	"github.com/jinhyuk-lee/resumate/pkg/kernel"
	"github.com/jinhyuk-lee/resumate/wizard/session"
)

// CompanyView prepares the research output for display. The structured record
// is re-derived from the raw text on every read; when parsing fails the view
// carries the formatted text blocks instead.
func (s *Service) CompanyView(ctx context.Context, id kernel.SessionID) (*session.CompanyViewResponse, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Research == nil {
		return nil, session.ErrResearchNotAvailable()
	}

	view := &session.CompanyViewResponse{
		Company:     sess.Research.Company,
		GeneratedAt: sess.Research.GeneratedAt,
		SelectedJob: sess.SelectedJob,
		RawText:     sess.Research.RawText,
	}

	data, err := normalize.ExtractCompanyData(sess.Research.RawText)
	if err != nil {
		view.Blocks = normalize.FormatText(sess.Research.RawText)
		view.Jobs = []normalize.JobPosting{}
		return view, nil
	}

	view.Structured = data
	view.Jobs = data.Jobs
	return view, nil
}

// ResumeView prepares the generated resume for display. The question/answer
// pairs are re-derived from the stored content.
func (s *Service) ResumeView(ctx context.Context, id kernel.SessionID) (*session.ResumeViewResponse, error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess.Resume == nil {
		return nil, session.ErrResumeNotReady()
	}

	qa := normalize.ResumeQAFromMarkdown(sess.Resume.Content)
	return &session.ResumeViewResponse{
		Title:       sess.Resume.Title,
		Content:     sess.Resume.Content,
		Questions:   qa.Questions,
		Answers:     qa.Answers,
		GeneratedAt: sess.Resume.GeneratedAt,
	}, nil
}

// ExportMarkdown renders the generated resume as a standalone markdown
// document: the title as a top-level heading, then the stored content.
func (s *Service) ExportMarkdown(ctx context.Context, id kernel.SessionID) (filename, content string, err error) {
	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return "", "", err
	}
	if sess.Resume == nil {
		return "", "", session.ErrResumeNotReady()
	}

	filename = sess.Resume.Title + ".md"
	content = "# " + sess.Resume.Title + "\n\n" + sess.Resume.Content + "\n"
	return filename, content, nil
}
