package booking

import "sync"

// roomLocker hands out one mutex per room id so booking operations on the
// same room serialize while operations on different rooms proceed
// independently. Entries are reference counted and reclaimed once idle.
type roomLocker struct {
	mu    sync.Mutex
	locks map[int64]*roomLock
}

type roomLock struct {
	mu   sync.Mutex
	refs int
}

func newRoomLocker() *roomLocker {
	return &roomLocker{locks: make(map[int64]*roomLock)}
}

// Lock acquires exclusive access to a room id, blocking until any holder
// releases it.
func (l *roomLocker) Lock(roomID int64) {
	l.mu.Lock()
	entry, ok := l.locks[roomID]
	if !ok {
		entry = &roomLock{}
		l.locks[roomID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()
}

// Unlock releases a room id previously acquired with Lock.
func (l *roomLocker) Unlock(roomID int64) {
	l.mu.Lock()
	entry := l.locks[roomID]
	entry.refs--
	if entry.refs == 0 {
		delete(l.locks, roomID)
	}
	l.mu.Unlock()

	entry.mu.Unlock()
}
