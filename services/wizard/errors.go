package wizard

import (
	"errors"
	"fmt"
)

// ErrSessionNotFound is returned when a session ID is unknown or expired.
var ErrSessionNotFound = errors.New("booking session not found or expired")

// TransitionError reports an action that was rejected by a guard. The state
// it was applied to is left unchanged.
type TransitionError struct {
	Code    string
	Message string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newTransitionError(code, msg string) error {
	return &TransitionError{Code: code, Message: msg}
}
