package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"coworking-reservation-backend/internal/model"
)

// Rules is the configurable part of the interval validation policy.
type Rules struct {
	MinDuration        time.Duration
	RequireFutureStart bool
}

// CheckInterval validates a proposed reservation window, short-circuiting on
// the first failed rule. now must be evaluated once by the caller so every
// rule sees the same instant.
func CheckInterval(start, end, now time.Time, rules Rules) error {
	if !end.After(start) {
		return ErrInvalidInterval
	}
	if end.Sub(start) < rules.MinDuration {
		return ErrDurationTooShort
	}
	if rules.RequireFutureStart && !start.After(now) {
		return ErrStartInPast
	}
	return nil
}

// Validator checks structural and business validity of a single reservation.
// It is stateless and safe for concurrent use.
type Validator struct {
	validate    *validator.Validate
	minDuration time.Duration
}

// NewValidator creates a reservation validator enforcing the given minimum
// duration.
func NewValidator(minDuration time.Duration) *Validator {
	return &Validator{
		validate:    validator.New(),
		minDuration: minDuration,
	}
}

// Validate runs the structural field checks first and, only when those pass,
// the interval rules. requireFutureStart is true on the creation path; on
// updates it follows the configured policy.
func (v *Validator) Validate(r *model.Reservation, now time.Time, requireFutureStart bool) error {
	if err := v.validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return translateFieldErrors(verrs)
		}
		return err
	}

	return CheckInterval(r.StartTime, r.EndTime, now, Rules{
		MinDuration:        v.minDuration,
		RequireFutureStart: requireFutureStart,
	})
}

func translateFieldErrors(errs validator.ValidationErrors) FieldErrors {
	var out FieldErrors
	for _, err := range errs {
		message := err.Error()
		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", err.Field())
		}
		out = append(out, FieldError{Field: err.Field(), Message: message})
	}
	return out
}
