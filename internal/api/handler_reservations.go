package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"coworking-reservation-backend/internal/booking"
	"coworking-reservation-backend/internal/model"
	"coworking-reservation-backend/internal/store"
)

type reservationRequest struct {
	Responsible string    `json:"responsible"`
	Document    string    `json:"document"`
	Email       string    `json:"email"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Purpose     string    `json:"purpose"`
	RoomID      int64     `json:"roomId"`
}

func (r reservationRequest) toModel() model.Reservation {
	return model.Reservation{
		Responsible: r.Responsible,
		Document:    r.Document,
		Email:       r.Email,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Purpose:     r.Purpose,
		RoomID:      r.RoomID,
	}
}

// CreateReservation handles POST /api/reservations. Structural validation
// runs before the conflict check, so a malformed reservation is reported as
// such even when the slot is also taken.
func (h *Handler) CreateReservation(c *gin.Context) {
	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	res := req.toModel()
	now := time.Now()
	if err := h.validator.Validate(&res, now, true); err != nil {
		renderReservationError(c, err)
		return
	}

	ctx := c.Request.Context()
	if _, err := h.store.GetRoom(ctx, res.RoomID); err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve room"})
		return
	}

	// Serialize check-then-persist per room so concurrent creates cannot
	// both pass the conflict check.
	unlock := h.locks.Lock(res.RoomID)
	defer unlock()

	existing, err := h.store.ListReservationsByRoom(ctx, res.RoomID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve reservations"})
		return
	}
	if booking.HasConflict(res.StartTime, res.EndTime, existing, 0) {
		renderReservationError(c, booking.ErrSchedulingConflict)
		return
	}

	if err := h.store.SaveReservation(ctx, &res); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save reservation"})
		return
	}
	c.JSON(http.StatusCreated, res)
}

// UpdateReservation handles PUT /api/reservations/:id. It builds a fully
// formed replacement, validates it, conflict-checks it excluding the
// reservation's own slot, and only then overwrites.
func (h *Handler) UpdateReservation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req reservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	current, err := h.store.GetReservation(ctx, id)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve reservation"})
		return
	}

	replacement := req.toModel()
	replacement.ID = current.ID
	replacement.PublicID = current.PublicID
	replacement.CreatedAt = current.CreatedAt

	now := time.Now()
	if err := h.validator.Validate(&replacement, now, h.futureStartOnUpdate); err != nil {
		renderReservationError(c, err)
		return
	}

	if _, err := h.store.GetRoom(ctx, replacement.RoomID); err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve room"})
		return
	}

	unlock := h.locks.Lock(replacement.RoomID)
	defer unlock()

	existing, err := h.store.ListReservationsByRoom(ctx, replacement.RoomID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve reservations"})
		return
	}
	if booking.HasConflict(replacement.StartTime, replacement.EndTime, existing, current.ID) {
		renderReservationError(c, booking.ErrSchedulingConflict)
		return
	}

	if err := h.store.SaveReservation(ctx, &replacement); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save reservation"})
		return
	}
	c.JSON(http.StatusOK, replacement)
}

// GetReservation handles GET /api/reservations/:id.
func (h *Handler) GetReservation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	res, err := h.store.GetReservation(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve reservation"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetReservationByDocument handles GET /api/documents/:document/reservation.
func (h *Handler) GetReservationByDocument(c *gin.Context) {
	document := c.Param("document")

	res, err := h.store.GetReservationByDocument(c.Request.Context(), document)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": fmt.Sprintf("document %s is not registered", document),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve reservation"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// ListReservations handles GET /api/reservations. A room_id or responsible
// filter returns the plain filtered list; without filters the listing is
// paginated.
func (h *Handler) ListReservations(c *gin.Context) {
	ctx := c.Request.Context()

	var filter store.ReservationFilter
	if raw := c.Query("room_id"); raw != "" {
		roomID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "room_id must be an integer"})
			return
		}
		filter.RoomID = roomID
	}
	filter.Responsible = c.Query("responsible")

	if filter.RoomID != 0 || filter.Responsible != "" {
		out, err := h.store.ListReservations(ctx, filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve reservations"})
			return
		}
		c.JSON(http.StatusOK, out)
		return
	}

	page, size := pageParams(c)
	items, total, err := h.store.ListReservationsPaged(ctx, page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve reservations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"page":  page,
		"size":  size,
		"total": total,
	})
}

// DeleteReservation handles DELETE /api/reservations/:id.
func (h *Handler) DeleteReservation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.store.DeleteReservation(c.Request.Context(), id); err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "reservation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete reservation"})
		return
	}
	c.Status(http.StatusNoContent)
}

// GetRoomUsageReport handles GET /api/reports/room-usage: reservation counts
// per room name. Rooms without reservations are absent.
func (h *Handler) GetRoomUsageReport(c *gin.Context) {
	all, err := h.store.GetAllReservations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve reservations"})
		return
	}
	c.JSON(http.StatusOK, booking.UsageByRoom(all))
}

func pageParams(c *gin.Context) (page, size int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ = strconv.Atoi(c.DefaultQuery("size", "10"))
	if page < 0 {
		page = 0
	}
	if size <= 0 || size > 100 {
		size = 10
	}
	return page, size
}
