package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

func (r *BookingGormRepository) GetBarberByID(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).
		Where("active = true").
		First(&barber, id).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

// --------------------------------------------------
// Availability reads
// --------------------------------------------------

func (r *BookingGormRepository) ListSchedulesForDay(
	ctx context.Context,
	barberID uint,
	dayOfWeek int,
) ([]models.Schedule, error) {

	var schedules []models.Schedule
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND day_of_week = ?", barberID, dayOfWeek).
		Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *BookingGormRepository) ListSpecialSchedules(
	ctx context.Context,
	barberID uint,
) ([]models.SpecialSchedule, error) {

	var specials []models.SpecialSchedule
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Find(&specials).Error; err != nil {
		return nil, err
	}
	return specials, nil
}

func (r *BookingGormRepository) ListBookedTimes(
	ctx context.Context,
	barberID uint,
	date string,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("barber_id = ? AND date = ?", barberID, date).
		Pluck("time", &times).Error; err != nil {
		return nil, err
	}
	return times, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) ListUserAppointmentsBetween(
	ctx context.Context,
	appUserID string,
	startDate string,
	endDate string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"app_user_id = ? AND date >= ? AND date <= ?",
			appUserID, startDate, endDate,
		).
		Order("date ASC, time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// CreateAppointmentClaimingSlot insere confiando no índice único de
// (barber_id, date, time). A checagem prévia só serve para devolver o
// conflito sem depender do roundtrip de INSERT no caso comum; a corrida
// perdida cai no 23505 e vira o mesmo slot_taken.
func (r *BookingGormRepository) CreateAppointmentClaimingSlot(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Where(
				"barber_id = ? AND date = ? AND time = ?",
				ap.BarberID, ap.Date, ap.Time,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness("slot_taken")
		}

		return tx.Create(ap).Error
	})

	if err != nil && isUniqueViolation(err) {
		return httperr.ErrBusiness("slot_taken")
	}
	return err
}

// --------------------------------------------------
// Cancellation / listing
// --------------------------------------------------

func (r *BookingGormRepository) FindAppointment(
	ctx context.Context,
	barberID uint,
	date string,
	timeStr string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND date = ? AND time = ?",
			barberID, date, timeStr,
		).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).
		Delete(&models.Appointment{}, id).Error
}

func (r *BookingGormRepository) ListAppointmentsForDate(
	ctx context.Context,
	barberID uint,
	date string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND date = ?", barberID, date).
		Order("time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// unique_violation do Postgres
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
