package schedule

import (
	"context"
	"time"

	domain "github.com/oficinahub/workshop-scheduler/internal/domain/schedule"
	"github.com/oficinahub/workshop-scheduler/internal/dto"
)

type ListToday struct {
	period *ListPeriod
}

func NewListToday(
	repo domain.Repository,
	services domain.ServiceSource,
) *ListToday {
	return &ListToday{
		period: NewListPeriod(repo, services),
	}
}

// Execute lists schedules dated exactly today.
func (uc *ListToday) Execute(
	ctx context.Context,
	workshopID uint,
	today time.Time,
) ([]dto.ScheduleDTO, error) {
	day := domain.Day(today)
	return uc.period.ExecuteRange(ctx, workshopID, day, day)
}
