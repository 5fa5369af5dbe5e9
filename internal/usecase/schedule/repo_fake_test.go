package schedule

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/oficinahub/workshop-scheduler/internal/models"
)

// fakeRepo is an in-memory Repository/ServiceSource. listDelay widens the gap
// between reading a day's workload and persisting, so the creation race is
// reproducible when serialization is broken.
type fakeRepo struct {
	mu sync.Mutex

	services  []models.Service
	schedules []models.Schedule
	nextID    uint

	listDelay time.Duration

	lastStart time.Time
	lastEnd   time.Time
}

func newFakeRepo(services ...models.Service) *fakeRepo {
	return &fakeRepo{services: services}
}

func (f *fakeRepo) GetWorkshopByID(ctx context.Context, id uint) (*models.Workshop, error) {
	return &models.Workshop{ID: id}, nil
}

func (f *fakeRepo) GetWorkshopBySlug(ctx context.Context, slug string) (*models.Workshop, error) {
	return &models.Workshop{ID: 1, Slug: slug}, nil
}

func (f *fakeRepo) ListServices(ctx context.Context, workshopID uint) ([]models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]models.Service, 0, len(f.services))
	for _, svc := range f.services {
		if svc.WorkshopID == 0 || svc.WorkshopID == workshopID {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListSchedulesForPeriod(
	ctx context.Context,
	workshopID uint,
	start time.Time,
	end time.Time,
) ([]models.Schedule, error) {

	f.mu.Lock()
	f.lastStart = start
	f.lastEnd = end

	var out []models.Schedule
	for _, s := range f.schedules {
		if s.WorkshopID != workshopID {
			continue
		}
		if s.Date.Before(start) || s.Date.After(end) {
			continue
		}
		out = append(out, s)
	}
	f.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })

	if f.listDelay > 0 {
		time.Sleep(f.listDelay)
	}

	return out, nil
}

func (f *fakeRepo) CreateSchedule(ctx context.Context, s *models.Schedule) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	s.ID = f.nextID
	f.schedules = append(f.schedules, *s)
	return nil
}

func (f *fakeRepo) DeleteSchedule(ctx context.Context, workshopID, scheduleID uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, s := range f.schedules {
		if s.ID == scheduleID && s.WorkshopID == workshopID {
			f.schedules = append(f.schedules[:i], f.schedules[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
