package booking

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the reservation rules. Handlers map these onto
// client-visible failures with errors.Is.
var (
	ErrInvalidInterval    = errors.New("end time must be after start time")
	ErrDurationTooShort   = errors.New("reservation is shorter than the minimum duration")
	ErrStartInPast        = errors.New("start time must be in the future")
	ErrSchedulingConflict = errors.New("room is already reserved for an overlapping time window")
	ErrNotFound           = errors.New("record not found")
)

// FieldError describes a single malformed or missing input field, caught
// before any business rule runs.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FieldErrors aggregates every malformed field of a request.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return fmt.Sprintf("malformed input: [%s]", strings.Join(msgs, "; "))
}
