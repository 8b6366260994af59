package api

import (
	"errors"
	"net/http"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"

	"coworking-reservation-backend/config"
	"coworking-reservation-backend/internal/booking"
	"coworking-reservation-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store     store.Store
	validator *booking.Validator
	locks     *booking.RoomLocker
	webpush   *webpush.Options

	// futureStartOnUpdate extends the future-start rule to the update path.
	// Creation always enforces it.
	futureStartOnUpdate bool
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, cfg *config.Config, webpushOptions *webpush.Options) *Handler {
	return &Handler{
		store:               s,
		validator:           booking.NewValidator(cfg.Booking.MinDuration),
		locks:               booking.NewRoomLocker(),
		webpush:             webpushOptions,
		futureStartOnUpdate: cfg.Booking.FutureStartOnUpdate,
	}
}

// renderReservationError translates the booking error taxonomy into a
// client-visible failure naming the rule that failed. Unexpected faults come
// back as a generic 500 without detail.
func renderReservationError(c *gin.Context, err error) {
	var fieldErrs booking.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed input", "fields": fieldErrs})
	case errors.Is(err, booking.ErrInvalidInterval),
		errors.Is(err, booking.ErrDurationTooShort),
		errors.Is(err, booking.ErrStartInPast):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrSchedulingConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
