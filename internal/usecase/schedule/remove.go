package schedule

import (
	"context"

	"github.com/oficinahub/workshop-scheduler/internal/audit"
	domain "github.com/oficinahub/workshop-scheduler/internal/domain/schedule"
)

type RemoveSchedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRemoveSchedule(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RemoveSchedule {
	return &RemoveSchedule{
		repo:  repo,
		audit: audit,
	}
}

// Execute deletes by id and reports whether a row was removed. Capacity is
// only checked at creation time; removal has no cascading effects.
func (uc *RemoveSchedule) Execute(
	ctx context.Context,
	workshopID uint,
	userID *uint,
	scheduleID uint,
) (bool, error) {

	removed, err := uc.repo.DeleteSchedule(ctx, workshopID, scheduleID)
	if err != nil {
		return false, err
	}

	if removed {
		uc.audit.Dispatch(audit.Event{
			WorkshopID: workshopID,
			UserID:     userID,
			Action:     "schedule_removed",
			Entity:     "schedule",
			EntityID:   &scheduleID,
		})
	}

	return removed, nil
}
