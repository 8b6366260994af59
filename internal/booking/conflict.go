package booking

import (
	"time"

	"coworking-reservation-backend/internal/model"
)

// Overlaps reports whether the half-open windows [aStart, aEnd) and
// [bStart, bEnd) intersect. Windows that only share an endpoint do not.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// HasConflict reports whether the candidate window [start, end) overlaps any
// reservation in existing. The caller is responsible for narrowing existing
// to the candidate's room. excludeID skips one reservation by id (0 means no
// exclusion), so an update does not conflict with its own prior slot.
// Returns on the first overlap found.
func HasConflict(start, end time.Time, existing []model.Reservation, excludeID int64) bool {
	for _, e := range existing {
		if excludeID != 0 && e.ID == excludeID {
			continue
		}
		if Overlaps(start, end, e.StartTime, e.EndTime) {
			return true
		}
	}
	return false
}
