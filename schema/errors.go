package schema

import (
	"fmt"
	"strings"
)

// ValidationError represents a single schema validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error at %s: %s", e.Field, e.Message)
}

// ValidationErrors is a batch of validation failures from one ValidateData call.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("validation errors:\n%s", strings.Join(msgs, "\n"))
}
