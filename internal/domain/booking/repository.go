package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Repository interface {
	// -------- Barber --------
	GetBarberByID(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	// -------- Availability reads --------
	ListSchedulesForDay(
		ctx context.Context,
		barberID uint,
		dayOfWeek int,
	) ([]models.Schedule, error)

	ListSpecialSchedules(
		ctx context.Context,
		barberID uint,
	) ([]models.SpecialSchedule, error)

	ListBookedTimes(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]string, error)

	// -------- Booking --------
	ListUserAppointmentsBetween(
		ctx context.Context,
		appUserID string,
		startDate string,
		endDate string,
	) ([]models.Appointment, error)

	// CreateAppointmentClaimingSlot grava o agendamento reivindicando o slot
	// exato; devolve slot_taken quando o trio (barber, date, time) já existe,
	// inclusive quando a corrida é perdida no índice único.
	CreateAppointmentClaimingSlot(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Cancellation --------
	FindAppointment(
		ctx context.Context,
		barberID uint,
		date string,
		timeStr string,
	) (*models.Appointment, error)

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	ListAppointmentsForDate(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]models.Appointment, error)
}
