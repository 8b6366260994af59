package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"coworking-reservation-backend/internal/model"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 10, hour, min, 0, 0, time.UTC)
}

func reservationAt(id int64, start, end time.Time) model.Reservation {
	return model.Reservation{ID: id, StartTime: start, EndTime: end, RoomID: 1}
}

func TestHasConflict(t *testing.T) {
	testCases := []struct {
		name      string
		start     time.Time
		end       time.Time
		existing  []model.Reservation
		excludeID int64
		expected  bool
	}{
		{
			name:     "no existing reservations",
			start:    at(10, 0),
			end:      at(11, 0),
			existing: nil,
			expected: false,
		},
		{
			name:     "partial overlap",
			start:    at(10, 0),
			end:      at(11, 0),
			existing: []model.Reservation{reservationAt(1, at(10, 30), at(11, 30))},
			expected: true,
		},
		{
			name:     "back to back after existing",
			start:    at(11, 0),
			end:      at(12, 0),
			existing: []model.Reservation{reservationAt(1, at(10, 0), at(11, 0))},
			expected: false,
		},
		{
			name:     "back to back before existing",
			start:    at(9, 0),
			end:      at(10, 0),
			existing: []model.Reservation{reservationAt(1, at(10, 0), at(11, 0))},
			expected: false,
		},
		{
			name:     "candidate contained in existing",
			start:    at(10, 0),
			end:      at(11, 0),
			existing: []model.Reservation{reservationAt(1, at(9, 0), at(12, 0))},
			expected: true,
		},
		{
			name:     "existing contained in candidate",
			start:    at(9, 0),
			end:      at(12, 0),
			existing: []model.Reservation{reservationAt(1, at(10, 0), at(11, 0))},
			expected: true,
		},
		{
			name:     "identical windows",
			start:    at(10, 0),
			end:      at(11, 0),
			existing: []model.Reservation{reservationAt(1, at(10, 0), at(11, 0))},
			expected: true,
		},
		{
			name:      "overlap only with the excluded reservation",
			start:     at(10, 15),
			end:       at(11, 15),
			existing:  []model.Reservation{reservationAt(7, at(10, 0), at(11, 0))},
			excludeID: 7,
			expected:  false,
		},
		{
			name:  "overlap with another reservation despite exclusion",
			start: at(10, 15),
			end:   at(11, 15),
			existing: []model.Reservation{
				reservationAt(7, at(10, 0), at(11, 0)),
				reservationAt(8, at(11, 0), at(12, 0)),
			},
			excludeID: 7,
			expected:  true,
		},
		{
			name:     "disjoint windows",
			start:    at(14, 0),
			end:      at(15, 0),
			existing: []model.Reservation{reservationAt(1, at(10, 0), at(11, 0))},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := HasConflict(tc.start, tc.end, tc.existing, tc.excludeID)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestOverlapsIsSymmetric(t *testing.T) {
	windows := [][2]time.Time{
		{at(10, 0), at(11, 0)},
		{at(10, 30), at(11, 30)},
		{at(11, 0), at(12, 0)},
		{at(9, 0), at(12, 0)},
		{at(14, 0), at(15, 0)},
	}

	for _, a := range windows {
		for _, b := range windows {
			assert.Equal(t,
				Overlaps(a[0], a[1], b[0], b[1]),
				Overlaps(b[0], b[1], a[0], a[1]),
				"overlap must be symmetric for %v and %v", a, b)
		}
	}
}
