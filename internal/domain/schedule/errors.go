package schedule

import (
	"fmt"
	"time"
)

// InvalidDayError rejects a schedule proposed for a weekend. Weekends take no
// work regardless of workload.
type InvalidDayError struct {
	Date time.Time
}

func (e *InvalidDayError) Error() string {
	return fmt.Sprintf("schedule: %s is not a workday", e.Date.Format("2006-01-02"))
}

// WorkloadExceededError rejects a schedule that would push the day past its
// tier limit.
type WorkloadExceededError struct {
	Date     time.Time
	WorkLoad int
	Limit    int
}

func (e *WorkloadExceededError) Error() string {
	return fmt.Sprintf(
		"schedule: workload %d exceeds limit %d on %s",
		e.WorkLoad, e.Limit, e.Date.Format("2006-01-02"),
	)
}

// ServiceNotFoundError reports a schedule referencing an unknown service id.
type ServiceNotFoundError struct {
	ServiceID uint
}

func (e *ServiceNotFoundError) Error() string {
	return fmt.Sprintf("schedule: service %d not found", e.ServiceID)
}

// DateNotInWindowError reports a schedule whose day fell outside the computed
// availability window.
type DateNotInWindowError struct {
	Date time.Time
}

func (e *DateNotInWindowError) Error() string {
	return fmt.Sprintf("schedule: %s is outside the availability window", e.Date.Format("2006-01-02"))
}
