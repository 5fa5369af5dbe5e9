package schedule

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/oficinahub/workshop-scheduler/internal/audit"
	domain "github.com/oficinahub/workshop-scheduler/internal/domain/schedule"
	"github.com/oficinahub/workshop-scheduler/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newCreateUC(repo *fakeRepo) *CreateSchedule {
	return NewCreateSchedule(
		repo,
		repo,
		domain.DefaultCapacityPolicy(),
		domain.NewDayLocker(),
		audit.NewDispatcher(nil, zap.NewNop()),
		zap.NewNop(),
	)
}

func TestCreateSchedule_RejectsWeekends(t *testing.T) {
	repo := newFakeRepo(models.Service{ID: 1, Name: "Oil change", WorkUnits: 1})
	uc := newCreateUC(repo)

	for _, d := range []time.Time{day(2024, 1, 6), day(2024, 1, 7)} { // Sat, Sun
		_, err := uc.Execute(context.Background(), CreateScheduleInput{
			WorkshopID: 1,
			ServiceID:  1,
			Date:       d,
		})

		var invalidDay *domain.InvalidDayError
		if !errors.As(err, &invalidDay) {
			t.Fatalf("%s: expected InvalidDayError, got %v", d.Weekday(), err)
		}
	}

	if len(repo.schedules) != 0 {
		t.Fatalf("weekend schedule was persisted")
	}
}

func TestCreateSchedule_WednesdayFillsToTen(t *testing.T) {
	repo := newFakeRepo(models.Service{ID: 1, Name: "Full revision", WorkUnits: 5})
	uc := newCreateUC(repo)

	wednesday := day(2024, 1, 3)
	in := CreateScheduleInput{WorkshopID: 1, ServiceID: 1, Date: wednesday}

	// 5 + 5 = 10 fills the base tier exactly.
	for i := 0; i < 2; i++ {
		if _, err := uc.Execute(context.Background(), in); err != nil {
			t.Fatalf("attempt %d: unexpected error: %v", i+1, err)
		}
	}

	// 15 > 10 must fail.
	_, err := uc.Execute(context.Background(), in)

	var exceeded *domain.WorkloadExceededError
	if !errors.As(err, &exceeded) {
		t.Fatalf("expected WorkloadExceededError, got %v", err)
	}
	if exceeded.WorkLoad != 15 || exceeded.Limit != 10 {
		t.Fatalf("expected workload 15 over limit 10, got %d over %d",
			exceeded.WorkLoad, exceeded.Limit)
	}
	if len(repo.schedules) != 2 {
		t.Fatalf("expected 2 persisted schedules, got %d", len(repo.schedules))
	}
}

func TestCreateSchedule_ThursdayUsesHighTier(t *testing.T) {
	repo := newFakeRepo(
		models.Service{ID: 1, Name: "Engine overhaul", WorkUnits: 13},
		models.Service{ID: 2, Name: "Inspection", WorkUnits: 1},
	)
	uc := newCreateUC(repo)

	thursday := day(2024, 1, 4)

	// The tier follows the proposed date: 13 fits a Thursday exactly.
	if _, err := uc.Execute(context.Background(), CreateScheduleInput{
		WorkshopID: 1, ServiceID: 1, Date: thursday,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Any positive cost on an exactly-full day must fail.
	_, err := uc.Execute(context.Background(), CreateScheduleInput{
		WorkshopID: 1, ServiceID: 2, Date: thursday,
	})

	var exceeded *domain.WorkloadExceededError
	if !errors.As(err, &exceeded) {
		t.Fatalf("expected WorkloadExceededError, got %v", err)
	}
}

func TestCreateSchedule_ThirteenFailsOnOrdinaryWeekday(t *testing.T) {
	repo := newFakeRepo(models.Service{ID: 1, Name: "Engine overhaul", WorkUnits: 13})
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), CreateScheduleInput{
		WorkshopID: 1, ServiceID: 1, Date: day(2024, 1, 2), // Tue
	})

	var exceeded *domain.WorkloadExceededError
	if !errors.As(err, &exceeded) {
		t.Fatalf("expected WorkloadExceededError, got %v", err)
	}
	if exceeded.Limit != 10 {
		t.Fatalf("expected base limit 10, got %d", exceeded.Limit)
	}
}

func TestCreateSchedule_UnknownService(t *testing.T) {
	repo := newFakeRepo(models.Service{ID: 1, Name: "Oil change", WorkUnits: 5})
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), CreateScheduleInput{
		WorkshopID: 1, ServiceID: 42, Date: day(2024, 1, 3),
	})

	var notFound *domain.ServiceNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ServiceNotFoundError, got %v", err)
	}
	if notFound.ServiceID != 42 {
		t.Fatalf("error carries wrong service id: %d", notFound.ServiceID)
	}
}

func TestCreateSchedule_PersistsTruncatedDate(t *testing.T) {
	repo := newFakeRepo(models.Service{ID: 1, Name: "Oil change", WorkUnits: 5})
	uc := newCreateUC(repo)

	at := time.Date(2024, 1, 3, 16, 45, 0, 0, time.UTC)
	sch, err := uc.Execute(context.Background(), CreateScheduleInput{
		WorkshopID: 1, ServiceID: 1, Date: at,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !sch.Date.Equal(day(2024, 1, 3)) {
		t.Fatalf("expected midnight date, got %s", sch.Date.Format(time.RFC3339))
	}
	if sch.ID == 0 {
		t.Fatalf("schedule id not assigned")
	}
}

// Two concurrent creations that are individually valid but jointly over the
// limit: the per-(workshop, day) lock must let exactly one through.
func TestCreateSchedule_ConcurrentCreationRaceIsClosed(t *testing.T) {
	repo := newFakeRepo(models.Service{ID: 1, Name: "Full revision", WorkUnits: 7})
	repo.listDelay = 20 * time.Millisecond

	uc := newCreateUC(repo)
	wednesday := day(2024, 1, 3)

	var wg sync.WaitGroup
	errs := make([]error, 2)

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), CreateScheduleInput{
				WorkshopID: 1, ServiceID: 1, Date: wednesday,
			})
		}(i)
	}
	wg.Wait()

	var succeeded, exceeded int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		default:
			var e *domain.WorkloadExceededError
			if !errors.As(err, &e) {
				t.Fatalf("unexpected error: %v", err)
			}
			exceeded++
		}
	}

	if succeeded != 1 || exceeded != 1 {
		t.Fatalf("expected exactly one success and one rejection, got %d/%d",
			succeeded, exceeded)
	}
	if len(repo.schedules) != 1 {
		t.Fatalf("expected 1 persisted schedule, got %d", len(repo.schedules))
	}
}
