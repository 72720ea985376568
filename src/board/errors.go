package board

import (
	"errors"
	"fmt"
)

// ErrValidation is returned when a signup is submitted without an email or activity.
var ErrValidation = errors.New("email and activity are required")

// StatusError is a non-2xx reply from the activities API. Detail and Message carry
// the server text when the body had them.
type StatusError struct {
	Code    int
	Detail  string
	Message string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("status %d: %s", e.Code, e.Detail)
	}
	if e.Message != "" {
		return fmt.Sprintf("status %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("status %d", e.Code)
}

// Text picks the server-supplied text, detail first.
func (e *StatusError) Text(fallback string) string {
	return firstNonEmpty(e.Detail, e.Message, fallback)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
