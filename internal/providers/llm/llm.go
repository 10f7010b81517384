package llm

import (
	"context"
	"errors"
)

// Request is one completion call: a system instruction, the user content and
// the model to run it on.
type Request struct {
	System string
	User   string
	Model  string
	// NoCache makes a CachedProvider go to the backend every time. Free-text
	// rewrites set it so that asking again yields a new version.
	NoCache bool
}

// Provider sends a prompt pair to a hosted model and returns the text of the
// first choice.
type Provider interface {
	Complete(ctx context.Context, req Request) (string, error)
	// Name identifies the backend in logs and usage records.
	Name() string
	Close() error
}

// Forgetter is implemented by providers that memoize answers. Forget drops the
// stored answer for req, for callers that found it unusable.
type Forgetter interface {
	Forget(ctx context.Context, req Request)
}

// ErrEmptyCompletion is returned when the provider answers without any text.
var ErrEmptyCompletion = errors.New("llm: empty completion")
