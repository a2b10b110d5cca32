// Package session hands a Submission from the input view to the results view within one
// browser session. The browser only holds an opaque token in a session cookie.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jonathan/interview-prep/internal/schemas"
	"github.com/jonathan/interview-prep/internal/types"
)

// CookieName is the session cookie holding the store token.
const CookieName = "ai_answer_generator_payload"

// ErrNotFound means there is no usable submission for the token: it was never stored,
// has expired, or the token is empty.
var ErrNotFound = errors.New("session: submission not found")

// Store saves a submission and returns the token that retrieves it.
// Each browser session writes once per form submit and reads on each results view.
type Store interface {
	Save(ctx context.Context, sub *types.Submission) (string, error)
	Load(ctx context.Context, token string) (*types.Submission, error)
	Close() error
}

// DecodeError means the stored payload exists but cannot be turned back into a Submission.
type DecodeError struct {
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("session: stored submission is unreadable: %v", e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}

func encode(sub *types.Submission) ([]byte, error) {
	if sub == nil {
		return nil, fmt.Errorf("session: nil submission")
	}
	data, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("session: failed to encode submission: %w", err)
	}
	return data, nil
}

func decode(data []byte) (*types.Submission, error) {
	if err := schemas.ValidateSubmission(data); err != nil {
		return nil, &DecodeError{Cause: err}
	}
	var sub types.Submission
	if err := json.Unmarshal(data, &sub); err != nil {
		return nil, &DecodeError{Cause: err}
	}
	return &sub, nil
}
