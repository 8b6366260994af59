package booking

import "coworking-reservation-backend/internal/model"

// UsageByRoom counts reservations grouped by room name. Rooms with zero
// reservations are absent from the result. The input must have the Room
// association loaded.
func UsageByRoom(all []model.Reservation) map[string]int64 {
	usage := make(map[string]int64)
	for _, r := range all {
		usage[r.Room.Name]++
	}
	return usage
}
