package match

import (
	"sync"

	"github.com/mcoot/rpsgame/internal/model"
)

// matchLocks serialises operations on the same match while letting
// different matches proceed in parallel
type matchLocks struct {
	mu    sync.Mutex
	locks map[model.MatchID]*matchLock
}

type matchLock struct {
	mu   sync.Mutex
	refs int
}

func newMatchLocks() *matchLocks {
	return &matchLocks{locks: make(map[model.MatchID]*matchLock)}
}

// lock acquires the lock for id and returns its release function
func (l *matchLocks) lock(id model.MatchID) func() {
	l.mu.Lock()
	entry, ok := l.locks[id]
	if !ok {
		entry = &matchLock{}
		l.locks[id] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}

// size returns the number of live lock entries
func (l *matchLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
