package session

import (
	"context"

	"github.com/jinhyuk-lee/resumate/pkg/kernel"
	"github.com/jinhyuk-lee/resumate/wizard/company"
	"github.com/jinhyuk-lee/resumate/wizard/resume"
)

// Store keeps in-progress wizard sessions. Sessions are transient: the
// in-memory implementation loses them on restart, the Redis implementation
// expires them after a TTL.
type Store interface {
	// Create saves a new session
	Create(ctx context.Context, sess *Session) error

	// Get retrieves a session by ID
	Get(ctx context.Context, id kernel.SessionID) (*Session, error)

	// Save overwrites an existing session
	Save(ctx context.Context, sess *Session) error

	// Delete removes a session
	Delete(ctx context.Context, id kernel.SessionID) error
}

// Researcher is the company research proxy the flow controller triggers on
// entry to the company-loading step. It always resolves with usable text.
type Researcher interface {
	Research(ctx context.Context, companyName string) (*company.ResearchResult, error)
}

// Generator is the resume generation proxy the flow controller triggers on
// entry to the resume-loading step.
type Generator interface {
	Generate(ctx context.Context, req resume.GenerateRequest) (string, error)
}
