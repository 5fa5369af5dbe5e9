package dto

import "time"

// ScheduleDTO carries the service display name, denormalized at the query
// boundary; it is never stored.
type ScheduleDTO struct {
	ID          uint      `json:"id"`
	Date        time.Time `json:"date"`
	ServiceID   uint      `json:"service_id"`
	ServiceName string    `json:"service_name"`
	Notes       string    `json:"notes,omitempty"`
}

type AvailableWorkloadDTO struct {
	Date              time.Time `json:"date"`
	AvailableWorkLoad int       `json:"available_work_load"`
}
