// Package provider adapts external generative-text services behind a single
// capability: submit text, receive generated text. Two wire formats exist, a
// chat-completion shape (OpenAI) and a single-prompt shape (Gemini); the rest
// of the pipeline is agnostic to which one is configured.
package provider

import (
	"context"
	"errors"
	"net"
	"time"
)

var (
	// ErrUnavailable means the provider answered with a non-success HTTP status.
	ErrUnavailable = errors.New("provider unavailable")
	// ErrMalformedResponse means the provider answered 2xx but the body did not
	// contain at least one candidate with non-empty text.
	ErrMalformedResponse = errors.New("provider response malformed")
	// ErrTimeout means the request did not complete within the client timeout.
	ErrTimeout = errors.New("provider request timed out")
)

// Prompt carries the two halves of a generation request. Instruction is
// optional system-level guidance; Input is the content to act on.
type Prompt struct {
	Instruction string
	Input       string
}

// Generator is implemented by every provider adapter.
type Generator interface {
	Generate(ctx context.Context, prompt Prompt) (string, error)
	Model() string
}

const requestTimeout = 30 * time.Second

// classifyTransportError folds client-side failures into the error taxonomy.
func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTimeout
	}
	return err
}
