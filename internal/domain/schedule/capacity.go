package schedule

import "time"

const (
	// BaseCapacity is the work-unit limit of an ordinary weekday.
	BaseCapacity = 10
	// HighCapacity applies on the designated heavy days (Thursday, Friday).
	HighCapacity = 13
)

// CapacityPolicy maps a weekday to its work-unit limit. Weekdays absent from
// the map have no capacity at all.
type CapacityPolicy struct {
	limits map[time.Weekday]int
}

func NewCapacityPolicy(limits map[time.Weekday]int) CapacityPolicy {
	copied := make(map[time.Weekday]int, len(limits))
	for day, limit := range limits {
		copied[day] = limit
	}
	return CapacityPolicy{limits: copied}
}

// DefaultCapacityPolicy is the workshop's standard week: 10 units Monday
// through Wednesday, 13 on Thursday and Friday, weekends closed.
func DefaultCapacityPolicy() CapacityPolicy {
	return NewCapacityPolicy(map[time.Weekday]int{
		time.Monday:    BaseCapacity,
		time.Tuesday:   BaseCapacity,
		time.Wednesday: BaseCapacity,
		time.Thursday:  HighCapacity,
		time.Friday:    HighCapacity,
	})
}

// LimitFor returns the day's work-unit limit, 0 when the day takes no work.
// The tier follows the date being booked, not the date of booking.
func (p CapacityPolicy) LimitFor(date time.Time) int {
	return p.limits[date.Weekday()]
}
