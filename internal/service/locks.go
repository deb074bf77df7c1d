package service

import (
	"sync"

	"github.com/google/uuid"
)

// userLocks serializes read-modify-write cycles per user. The diary and
// summary documents are only ever shared within one user, so a per-user
// mutex is enough to keep the (product, day) dedup invariant under
// concurrent requests; no global ordering is needed.
type userLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[uuid.UUID]*sync.Mutex)}
}

// Lock acquires the mutex for userID, creating it on first use, and returns
// the unlock function.
func (l *userLocks) Lock(userID uuid.UUID) func() {
	l.mu.Lock()
	m, ok := l.locks[userID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[userID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
