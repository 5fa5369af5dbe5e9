package schedule

import (
	"context"
	"time"

	domain "github.com/oficinahub/workshop-scheduler/internal/domain/schedule"
	"github.com/oficinahub/workshop-scheduler/internal/dto"
	"github.com/oficinahub/workshop-scheduler/internal/models"
)

type ListPeriod struct {
	repo     domain.Repository
	services domain.ServiceSource
}

func NewListPeriod(
	repo domain.Repository,
	services domain.ServiceSource,
) *ListPeriod {
	return &ListPeriod{
		repo:     repo,
		services: services,
	}
}

// Execute lists the default lookahead: today through NextValidDay inclusive.
func (uc *ListPeriod) Execute(
	ctx context.Context,
	workshopID uint,
	today time.Time,
) ([]dto.ScheduleDTO, error) {
	return uc.ExecuteRange(
		ctx,
		workshopID,
		domain.Day(today),
		domain.NextValidDay(today),
	)
}

// ExecuteRange lists schedules from start through end-of-day on end,
// ascending by date.
func (uc *ListPeriod) ExecuteRange(
	ctx context.Context,
	workshopID uint,
	start time.Time,
	end time.Time,
) ([]dto.ScheduleDTO, error) {

	schedules, err := uc.repo.ListSchedulesForPeriod(
		ctx,
		workshopID,
		domain.Day(start),
		domain.EndOfDay(end),
	)
	if err != nil {
		return nil, err
	}

	return uc.enrich(ctx, workshopID, schedules)
}

// enrich attaches each schedule's service display name. Unknown service ids
// surface as ServiceNotFoundError instead of an empty name.
func (uc *ListPeriod) enrich(
	ctx context.Context,
	workshopID uint,
	schedules []models.Schedule,
) ([]dto.ScheduleDTO, error) {

	services, err := uc.services.ListServices(ctx, workshopID)
	if err != nil {
		return nil, err
	}

	names := make(map[uint]string, len(services))
	for _, svc := range services {
		names[svc.ID] = svc.Name
	}

	out := make([]dto.ScheduleDTO, 0, len(schedules))
	for _, sch := range schedules {
		name, ok := names[sch.ServiceID]
		if !ok {
			return nil, &domain.ServiceNotFoundError{ServiceID: sch.ServiceID}
		}

		out = append(out, dto.ScheduleDTO{
			ID:          sch.ID,
			Date:        sch.Date,
			ServiceID:   sch.ServiceID,
			ServiceName: name,
			Notes:       sch.Notes,
		})
	}

	return out, nil
}
