package schedule

import "time"

const dayKeyFormat = "2006-01-02"

// DayCapacity is one entry of the availability report.
type DayCapacity struct {
	Date      time.Time
	Remaining int
}

// CapacityWindow tracks remaining capacity over a run of workdays. Unlike
// WorkdayWindow it includes today when today is a workday, matching the
// default availability report. Entries are keyed by calendar date so that a
// schedule loaded in a different location still lands on the right day.
type CapacityWindow struct {
	days      []time.Time
	remaining map[string]int
}

// BuildCapacityWindow collects the next count workdays starting at today
// (inclusive), each initialized to its full tier limit.
func BuildCapacityWindow(today time.Time, count int, policy CapacityPolicy) *CapacityWindow {
	w := &CapacityWindow{
		days:      make([]time.Time, 0, count),
		remaining: make(map[string]int, count),
	}

	date := Day(today)
	for len(w.days) != count {
		if !IsWeekend(date) {
			w.days = append(w.days, date)
			w.remaining[date.Format(dayKeyFormat)] = policy.LimitFor(date)
		}
		date = date.AddDate(0, 0, 1)
	}

	return w
}

// Consume subtracts units from the entry for date's calendar day. The result
// may go negative; this is reporting, not enforcement. A date outside the
// window is a DateNotInWindowError so callers decide whether to skip or fail.
func (w *CapacityWindow) Consume(date time.Time, units int) error {
	key := date.Format(dayKeyFormat)
	if _, ok := w.remaining[key]; !ok {
		return &DateNotInWindowError{Date: Day(date)}
	}
	w.remaining[key] -= units
	return nil
}

// Entries returns the window in ascending date order.
func (w *CapacityWindow) Entries() []DayCapacity {
	out := make([]DayCapacity, 0, len(w.days))
	for _, day := range w.days {
		out = append(out, DayCapacity{
			Date:      day,
			Remaining: w.remaining[day.Format(dayKeyFormat)],
		})
	}
	return out
}
