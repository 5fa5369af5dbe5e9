package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/oficinahub/workshop-scheduler/internal/domain/schedule"
	"github.com/oficinahub/workshop-scheduler/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Workshop
// --------------------------------------------------

func (r *ScheduleGormRepository) GetWorkshopByID(
	ctx context.Context,
	id uint,
) (*models.Workshop, error) {

	var shop models.Workshop
	if err := r.db.WithContext(ctx).First(&shop, id).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *ScheduleGormRepository) GetWorkshopBySlug(
	ctx context.Context,
	slug string,
) (*models.Workshop, error) {

	var shop models.Workshop
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

// --------------------------------------------------
// Service catalog
// --------------------------------------------------

func (r *ScheduleGormRepository) ListServices(
	ctx context.Context,
	workshopID uint,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("workshop_id = ?", workshopID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func (r *ScheduleGormRepository) ListSchedulesForPeriod(
	ctx context.Context,
	workshopID uint,
	start time.Time,
	end time.Time,
) ([]models.Schedule, error) {

	var schedules []models.Schedule
	if err := r.db.WithContext(ctx).
		Where(
			"workshop_id = ? AND date >= ? AND date <= ?",
			workshopID, start, end,
		).
		Order("date ASC").
		Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *ScheduleGormRepository) CreateSchedule(
	ctx context.Context,
	s *models.Schedule,
) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ScheduleGormRepository) DeleteSchedule(
	ctx context.Context,
	workshopID uint,
	scheduleID uint,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Where("id = ? AND workshop_id = ?", scheduleID, workshopID).
		Delete(&models.Schedule{})

	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
