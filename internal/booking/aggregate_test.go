package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"coworking-reservation-backend/internal/model"
)

func TestUsageByRoom(t *testing.T) {
	roomA := model.Room{ID: 1, Name: "Room A"}
	roomB := model.Room{ID: 2, Name: "Room B"}
	// Room C exists but has no reservations and must not appear.

	all := []model.Reservation{
		{ID: 1, RoomID: roomA.ID, Room: roomA},
		{ID: 2, RoomID: roomA.ID, Room: roomA},
		{ID: 3, RoomID: roomA.ID, Room: roomA},
		{ID: 4, RoomID: roomB.ID, Room: roomB},
	}

	usage := UsageByRoom(all)

	assert.Equal(t, map[string]int64{
		"Room A": 3,
		"Room B": 1,
	}, usage)
	assert.NotContains(t, usage, "Room C")
}

func TestUsageByRoomEmpty(t *testing.T) {
	assert.Empty(t, UsageByRoom(nil))
}
