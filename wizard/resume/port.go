package resume

import "context"

// Completer is the external LLM collaborator: one combined prompt in, plain
// text out. Implemented by internal/ai/provider.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
