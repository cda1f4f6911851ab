package llmclient

import (
	"context"
	"errors"
	"fmt"
)

// ErrEmptyCompletion is returned when the upstream response carries no text.
var ErrEmptyCompletion = errors.New("empty completion from LLM")

// Client is a chat-completion backend. Complete sends one system instruction
// and one user turn and returns the model's raw text output. The text is NOT
// guaranteed to be valid JSON even when the instructions demand it; callers
// recover the payload themselves.
type Client interface {
	Name() string
	Complete(ctx context.Context, system, user string) (string, error)
	Close() error
}

// PermanentError indicates an error that will not resolve with retries.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }
func (e *PermanentError) Unwrap() error { return e.Err }

func NewPermanentError(err error) error {
	return &PermanentError{Err: err}
}

// StatusError reports a non-success response from the upstream API. Body is
// kept for operator logs only and must never reach an end user.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.Status, e.Body)
}
