package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"coworking-reservation-backend/internal/booking"
	"coworking-reservation-backend/internal/model"
	"coworking-reservation-backend/internal/parse"
	"coworking-reservation-backend/internal/store"
)

type roomRequest struct {
	Name      string `json:"name" binding:"required"`
	Capacity  int    `json:"capacity" binding:"min=0"`
	Location  string `json:"location"`
	Equipment string `json:"equipment"`
	Status    string `json:"status"`
}

// ListRooms handles GET /api/rooms with optional min_capacity, status and
// equipment filters.
func (h *Handler) ListRooms(c *gin.Context) {
	var filter store.RoomFilter

	if raw := c.Query("min_capacity"); raw != "" {
		minCapacity, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "min_capacity must be an integer"})
			return
		}
		filter.MinCapacity = &minCapacity
	}
	filter.Status = c.Query("status")
	filter.Equipment = c.Query("equipment")

	rooms, err := h.store.ListRooms(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve rooms"})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoom handles GET /api/rooms/:id.
func (h *Handler) GetRoom(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	room, err := h.store.GetRoom(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve room"})
		return
	}
	c.JSON(http.StatusOK, room)
}

// CreateRoom handles POST /api/rooms.
func (h *Handler) CreateRoom(c *gin.Context) {
	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	room := model.Room{
		Name:      req.Name,
		Capacity:  req.Capacity,
		Location:  req.Location,
		Equipment: parse.NormalizeEquipment(req.Equipment),
		Status:    req.Status,
	}
	if room.Status == "" {
		room.Status = "available"
	}

	if err := h.store.CreateRoom(c.Request.Context(), &room); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create room"})
		return
	}
	c.JSON(http.StatusCreated, room)
}

// UpdateRoom handles PUT /api/rooms/:id.
func (h *Handler) UpdateRoom(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	room, err := h.store.GetRoom(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve room"})
		return
	}

	room.Name = req.Name
	room.Capacity = req.Capacity
	room.Location = req.Location
	room.Equipment = parse.NormalizeEquipment(req.Equipment)
	if req.Status != "" {
		room.Status = req.Status
	}

	if err := h.store.UpdateRoom(c.Request.Context(), room); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update room"})
		return
	}
	c.JSON(http.StatusOK, room)
}

// DeleteRoom handles DELETE /api/rooms/:id. Deleting a room also removes all
// of its reservations.
func (h *Handler) DeleteRoom(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.store.DeleteRoom(c.Request.Context(), id); err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete room"})
		return
	}
	c.Status(http.StatusNoContent)
}

// pathID parses a numeric path parameter, answering 400 itself on failure.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}
