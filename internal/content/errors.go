package content

import (
	"fmt"

	"github.com/jonathan/interview-prep/internal/types"
)

// ConfigurationError indicates the content table is incomplete or was asked for a stage
// it does not know. Neither can happen with the embedded document and a validated stage.
type ConfigurationError struct {
	Stage   types.Stage
	Message string
	Cause   error
}

func (e *ConfigurationError) Error() string {
	msg := "content configuration error"
	if e.Stage != "" {
		msg = fmt.Sprintf("%s for stage %q", msg, string(e.Stage))
	}
	msg = fmt.Sprintf("%s: %s", msg, e.Message)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}
