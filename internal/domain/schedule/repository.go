package schedule

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Repository interface {
	// -------- Recurring --------
	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Schedule, error)

	ListByBarberAndDay(
		ctx context.Context,
		barberID uint,
		dayOfWeek int,
	) ([]models.Schedule, error)

	ListByBarber(
		ctx context.Context,
		barberID uint,
	) ([]models.Schedule, error)

	// CreateClosingPrevious grava a agenda nova e, na mesma transação,
	// encerra a aberta superada (toClose pode ser nil).
	CreateClosingPrevious(
		ctx context.Context,
		cand *models.Schedule,
		toClose *models.Schedule,
	) error

	SaveClosingPrevious(
		ctx context.Context,
		cand *models.Schedule,
		toClose *models.Schedule,
	) error

	Delete(
		ctx context.Context,
		id uint,
	) error

	// -------- Special --------
	GetSpecialByID(
		ctx context.Context,
		id uint,
	) (*models.SpecialSchedule, error)

	ListSpecialsByBarber(
		ctx context.Context,
		barberID uint,
	) ([]models.SpecialSchedule, error)

	CreateSpecial(
		ctx context.Context,
		s *models.SpecialSchedule,
	) error

	SaveSpecial(
		ctx context.Context,
		s *models.SpecialSchedule,
	) error
}
