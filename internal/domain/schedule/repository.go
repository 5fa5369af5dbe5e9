package schedule

import (
	"context"
	"time"

	"github.com/oficinahub/workshop-scheduler/internal/models"
)

type Repository interface {
	// -------- Workshop --------
	GetWorkshopByID(
		ctx context.Context,
		id uint,
	) (*models.Workshop, error)

	GetWorkshopBySlug(
		ctx context.Context,
		slug string,
	) (*models.Workshop, error)

	// -------- Service catalog --------
	ListServices(
		ctx context.Context,
		workshopID uint,
	) ([]models.Service, error)

	// -------- Schedule --------

	// ListSchedulesForPeriod returns the workshop's schedules with
	// start <= date <= end, ordered ascending by date.
	ListSchedulesForPeriod(
		ctx context.Context,
		workshopID uint,
		start time.Time,
		end time.Time,
	) ([]models.Schedule, error)

	CreateSchedule(
		ctx context.Context,
		s *models.Schedule,
	) error

	// DeleteSchedule reports whether a row was actually removed.
	DeleteSchedule(
		ctx context.Context,
		workshopID uint,
		scheduleID uint,
	) (bool, error)
}

// ServiceSource is the read side of the service catalog. The repository
// satisfies it directly; the redis cache wraps it.
type ServiceSource interface {
	ListServices(ctx context.Context, workshopID uint) ([]models.Service, error)
}
