package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coworking-reservation-backend/internal/model"
)

func TestRoomLifecycle(t *testing.T) {
	router, _ := setupTestRouter(t)

	room := createTestRoom(t, router, "Lab", 10)
	assert.NotZero(t, room.ID)
	assert.Equal(t, "available", room.Status)

	w := doJSON(router, http.MethodGet, "/api/rooms/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodPut, "/api/rooms/1", map[string]any{
		"name":      "Lab",
		"capacity":  12,
		"location":  "2nd floor",
		"equipment": "Projector, projector, Whiteboard",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated model.Room
	decodeBody(t, w, &updated)
	assert.Equal(t, 12, updated.Capacity)
	assert.Equal(t, "Projector, Whiteboard", updated.Equipment, "equipment tags must be normalized")

	w = doJSON(router, http.MethodDelete, "/api/rooms/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(router, http.MethodGet, "/api/rooms/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoomValidationAndNotFound(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/rooms", map[string]any{"capacity": 5})
	assert.Equal(t, http.StatusBadRequest, w.Code, "name is required")

	w = doJSON(router, http.MethodGet, "/api/rooms/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, http.MethodPut, "/api/rooms/999", map[string]any{"name": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, http.MethodDelete, "/api/rooms/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(router, http.MethodGet, "/api/rooms/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRoomFilters(t *testing.T) {
	router, _ := setupTestRouter(t)

	createTestRoom(t, router, "Booth", 2)
	w := doJSON(router, http.MethodPost, "/api/rooms", map[string]any{
		"name":      "Auditorium",
		"capacity":  50,
		"equipment": "Projector, Sound system",
		"status":    "maintenance",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodGet, "/api/rooms?min_capacity=10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rooms []model.Room
	decodeBody(t, w, &rooms)
	require.Len(t, rooms, 1)
	assert.Equal(t, "Auditorium", rooms[0].Name)

	w = doJSON(router, http.MethodGet, "/api/rooms?status=available", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &rooms)
	require.Len(t, rooms, 1)
	assert.Equal(t, "Booth", rooms[0].Name)

	w = doJSON(router, http.MethodGet, "/api/rooms?equipment=projector", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &rooms)
	require.Len(t, rooms, 1)
	assert.Equal(t, "Auditorium", rooms[0].Name)

	w = doJSON(router, http.MethodGet, "/api/rooms?min_capacity=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteRoomCascadesOverAPI(t *testing.T) {
	router, s := setupTestRouter(t)

	room := createTestRoom(t, router, "Lab", 10)
	now := time.Now()

	w := doJSON(router, http.MethodPost, "/api/reservations",
		reservationBody(room.ID, now.Add(1*time.Hour), now.Add(2*time.Hour)))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(router, http.MethodDelete, "/api/rooms/1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	left, err := s.GetAllReservations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, left, "deleting a room must delete its reservations")
}
