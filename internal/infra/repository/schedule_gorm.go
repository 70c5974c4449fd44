package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Recurring
// --------------------------------------------------

func (r *ScheduleGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Schedule, error) {

	var s models.Schedule
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ScheduleGormRepository) ListByBarberAndDay(
	ctx context.Context,
	barberID uint,
	dayOfWeek int,
) ([]models.Schedule, error) {

	var schedules []models.Schedule
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND day_of_week = ?", barberID, dayOfWeek).
		Order("start_date ASC").
		Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *ScheduleGormRepository) ListByBarber(
	ctx context.Context,
	barberID uint,
) ([]models.Schedule, error) {

	var schedules []models.Schedule
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Order("day_of_week ASC, start_date ASC").
		Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *ScheduleGormRepository) CreateClosingPrevious(
	ctx context.Context,
	cand *models.Schedule,
	toClose *models.Schedule,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if toClose != nil {
			if err := tx.
				Model(&models.Schedule{}).
				Where("id = ?", toClose.ID).
				Update("end_date", toClose.EndDate).Error; err != nil {
				return err
			}
		}
		return tx.Create(cand).Error
	})
}

func (r *ScheduleGormRepository) SaveClosingPrevious(
	ctx context.Context,
	cand *models.Schedule,
	toClose *models.Schedule,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if toClose != nil {
			if err := tx.
				Model(&models.Schedule{}).
				Where("id = ?", toClose.ID).
				Update("end_date", toClose.EndDate).Error; err != nil {
				return err
			}
		}
		return tx.Save(cand).Error
	})
}

func (r *ScheduleGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).
		Delete(&models.Schedule{}, id).Error
}

// --------------------------------------------------
// Special
// --------------------------------------------------

func (r *ScheduleGormRepository) GetSpecialByID(
	ctx context.Context,
	id uint,
) (*models.SpecialSchedule, error) {

	var s models.SpecialSchedule
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ScheduleGormRepository) ListSpecialsByBarber(
	ctx context.Context,
	barberID uint,
) ([]models.SpecialSchedule, error) {

	var specials []models.SpecialSchedule
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Order("start_date ASC").
		Find(&specials).Error; err != nil {
		return nil, err
	}
	return specials, nil
}

func (r *ScheduleGormRepository) CreateSpecial(
	ctx context.Context,
	s *models.SpecialSchedule,
) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ScheduleGormRepository) SaveSpecial(
	ctx context.Context,
	s *models.SpecialSchedule,
) error {
	return r.db.WithContext(ctx).Save(s).Error
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
