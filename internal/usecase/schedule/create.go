package schedule

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/oficinahub/workshop-scheduler/internal/audit"
	domain "github.com/oficinahub/workshop-scheduler/internal/domain/schedule"
	"github.com/oficinahub/workshop-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateScheduleInput struct {
	WorkshopID uint
	UserID     *uint

	ServiceID uint
	Date      time.Time
	Notes     string
}

// ======================================================
// USE CASE
// ======================================================

type CreateSchedule struct {
	repo     domain.Repository
	services domain.ServiceSource
	policy   domain.CapacityPolicy
	locks    *domain.DayLocker
	audit    *audit.Dispatcher
	logger   *zap.Logger
}

func NewCreateSchedule(
	repo domain.Repository,
	services domain.ServiceSource,
	policy domain.CapacityPolicy,
	locks *domain.DayLocker,
	audit *audit.Dispatcher,
	logger *zap.Logger,
) *CreateSchedule {
	return &CreateSchedule{
		repo:     repo,
		services: services,
		policy:   policy,
		locks:    locks,
		audit:    audit,
		logger:   logger,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateSchedule) Execute(
	ctx context.Context,
	in CreateScheduleInput,
) (*models.Schedule, error) {

	day := domain.Day(in.Date)

	if domain.IsWeekend(day) {
		return nil, &domain.InvalidDayError{Date: day}
	}

	// Hold the (workshop, day) slot across read-sum-compare-persist so two
	// concurrent creations cannot both pass validation and jointly exceed
	// the limit.
	unlock := uc.locks.Lock(in.WorkshopID, day)
	defer unlock()

	services, err := uc.services.ListServices(ctx, in.WorkshopID)
	if err != nil {
		return nil, err
	}

	units, err := workUnitsFor(services, in.ServiceID)
	if err != nil {
		return nil, err
	}

	existing, err := uc.repo.ListSchedulesForPeriod(
		ctx,
		in.WorkshopID,
		day,
		domain.EndOfDay(day),
	)
	if err != nil {
		return nil, err
	}

	workLoad := units
	for _, s := range existing {
		u, err := workUnitsFor(services, s.ServiceID)
		if err != nil {
			return nil, err
		}
		workLoad += u
	}

	// Strict comparison: a day may be filled to exactly its limit. The tier
	// follows the proposed date, not the booking date.
	limit := uc.policy.LimitFor(day)
	if workLoad > limit {
		return nil, &domain.WorkloadExceededError{
			Date:     day,
			WorkLoad: workLoad,
			Limit:    limit,
		}
	}

	sch := &models.Schedule{
		WorkshopID: in.WorkshopID,
		ServiceID:  in.ServiceID,
		Date:       day,
		Notes:      in.Notes,
	}

	if err := uc.repo.CreateSchedule(ctx, sch); err != nil {
		return nil, err
	}

	uc.logger.Info("schedule created",
		zap.Uint("workshop_id", in.WorkshopID),
		zap.Uint("schedule_id", sch.ID),
		zap.String("date", day.Format("2006-01-02")),
		zap.Int("work_load", workLoad),
		zap.Int("limit", limit),
	)

	uc.audit.Dispatch(audit.Event{
		WorkshopID: in.WorkshopID,
		UserID:     in.UserID,
		Action:     "schedule_created",
		Entity:     "schedule",
		EntityID:   &sch.ID,
	})

	return sch, nil
}

// workUnitsFor resolves the effort cost of a service id from the catalog
// snapshot. An unknown id is an explicit ServiceNotFoundError, never a silent
// zero.
func workUnitsFor(services []models.Service, serviceID uint) (int, error) {
	for _, svc := range services {
		if svc.ID == serviceID {
			return svc.WorkUnits, nil
		}
	}
	return 0, &domain.ServiceNotFoundError{ServiceID: serviceID}
}
