package schedule

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "github.com/oficinahub/workshop-scheduler/internal/domain/schedule"
	"github.com/oficinahub/workshop-scheduler/internal/dto"
)

// availabilityWindowDays is the default lookahead: today plus the workdays up
// to NextValidDay, six entries when today itself is a workday.
const availabilityWindowDays = 6

type GetAvailableWorkload struct {
	repo     domain.Repository
	services domain.ServiceSource
	policy   domain.CapacityPolicy
	logger   *zap.Logger
}

func NewGetAvailableWorkload(
	repo domain.Repository,
	services domain.ServiceSource,
	policy domain.CapacityPolicy,
	logger *zap.Logger,
) *GetAvailableWorkload {
	return &GetAvailableWorkload{
		repo:     repo,
		services: services,
		policy:   policy,
		logger:   logger,
	}
}

// Execute reports the remaining work units per workday over the default
// lookahead window. It performs no enforcement: a day over-booked outside the
// validated path shows up negative.
func (uc *GetAvailableWorkload) Execute(
	ctx context.Context,
	workshopID uint,
	today time.Time,
) ([]dto.AvailableWorkloadDTO, error) {

	window := domain.BuildCapacityWindow(today, availabilityWindowDays, uc.policy)

	services, err := uc.services.ListServices(ctx, workshopID)
	if err != nil {
		return nil, err
	}

	schedules, err := uc.repo.ListSchedulesForPeriod(
		ctx,
		workshopID,
		domain.Day(today),
		domain.EndOfDay(domain.NextValidDay(today)),
	)
	if err != nil {
		return nil, err
	}

	for _, sch := range schedules {
		units, err := workUnitsFor(services, sch.ServiceID)
		if err != nil {
			return nil, err
		}

		if err := window.Consume(sch.Date, units); err != nil {
			// Range query and window building can disagree at weekend
			// boundaries; an out-of-window schedule must not sink the report.
			uc.logger.Warn("schedule outside availability window",
				zap.Uint("workshop_id", workshopID),
				zap.Uint("schedule_id", sch.ID),
				zap.String("date", sch.Date.Format("2006-01-02")),
				zap.Error(err),
			)
		}
	}

	entries := window.Entries()
	out := make([]dto.AvailableWorkloadDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.AvailableWorkloadDTO{
			Date:              e.Date,
			AvailableWorkLoad: e.Remaining,
		})
	}

	return out, nil
}
