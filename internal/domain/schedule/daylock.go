package schedule

import (
	"sync"
	"time"
)

// DayLocker serializes creation per (workshop, calendar day). Two requests
// racing to book the same day would otherwise both read a workload below the
// limit and both pass validation. Entries are reference-counted and dropped
// when the last holder unlocks.
//
// This guards a single process. A multi-instance deployment would need the
// equivalent discipline in the database (advisory lock or re-check on write).
type DayLocker struct {
	mu    sync.Mutex
	locks map[dayKey]*dayLock
}

type dayKey struct {
	workshopID uint
	day        string
}

type dayLock struct {
	mu   sync.Mutex
	refs int
}

func NewDayLocker() *DayLocker {
	return &DayLocker{locks: make(map[dayKey]*dayLock)}
}

// Lock blocks until the (workshop, day) slot is free and returns the unlock
// function. Callers must defer it.
func (l *DayLocker) Lock(workshopID uint, day time.Time) func() {
	key := dayKey{workshopID: workshopID, day: Day(day).Format("2006-01-02")}

	l.mu.Lock()
	entry := l.locks[key]
	if entry == nil {
		entry = &dayLock{}
		l.locks[key] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, key)
		}
		l.mu.Unlock()
	}
}
