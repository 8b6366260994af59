package booking

import "sync"

// RoomLocker hands out one mutex per room so the fetch-check-persist sequence
// is serialized per room. Without it, two concurrent creates for overlapping
// slots on the same room could both pass the conflict check before either is
// persisted.
type RoomLocker struct {
	mu    sync.Mutex
	rooms map[int64]*sync.Mutex
}

// NewRoomLocker creates an empty RoomLocker.
func NewRoomLocker() *RoomLocker {
	return &RoomLocker{rooms: make(map[int64]*sync.Mutex)}
}

// Lock acquires the mutex for roomID, creating it on first use, and returns
// the function releasing it.
func (l *RoomLocker) Lock(roomID int64) (unlock func()) {
	l.mu.Lock()
	m, ok := l.rooms[roomID]
	if !ok {
		m = &sync.Mutex{}
		l.rooms[roomID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
