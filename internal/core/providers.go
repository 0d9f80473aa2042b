package core

import "context"

// Completer is the language-model completion service. It may be slow,
// unreachable or not configured at all; callers must treat any error as
// "unavailable" and degrade instead of failing the reply.
type Completer interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}
