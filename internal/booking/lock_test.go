package booking

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoomLockerSerializesPerRoom(t *testing.T) {
	locker := NewRoomLocker()

	const goroutines = 50
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locker.Lock(42)
			counter++
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines, counter)
}

func TestRoomLockerIndependentRooms(t *testing.T) {
	locker := NewRoomLocker()

	unlockA := locker.Lock(1)
	defer unlockA()

	// A different room must not block.
	done := make(chan struct{})
	go func() {
		unlockB := locker.Lock(2)
		unlockB()
		close(done)
	}()
	<-done
}
