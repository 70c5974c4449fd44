package schedule

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type UpdateSchedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateSchedule(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateSchedule {
	return &UpdateSchedule{
		repo:  repo,
		audit: audit,
	}
}

// Execute substitui a agenda por inteiro. Abrir a vigência (EndDate nulo)
// segue a mesma política do create: a outra agenda aberta, se houver, é
// encerrada na véspera — política unificada, ver DESIGN.md.
func (uc *UpdateSchedule) Execute(
	ctx context.Context,
	actorID string,
	id uint,
	in ScheduleInput,
) (*models.Schedule, error) {

	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("schedule_not_found")
	}

	// barbeiro dono não muda num replace
	in.BarberID = current.BarberID

	cand := in.toModel(current.ID)

	if err := domain.ValidateRecurring(cand); err != nil {
		return nil, err
	}

	existing, err := uc.repo.ListByBarberAndDay(ctx, cand.BarberID, cand.DayOfWeek)
	if err != nil {
		return nil, err
	}

	var toClose *models.Schedule
	if cand.OpenEnded() {
		toClose, err = domain.ResolveOpenEnded(cand, existing)
		if err != nil {
			return nil, err
		}
	}

	skip := []uint{}
	if toClose != nil {
		skip = append(skip, toClose.ID)
	}
	if err := domain.CheckOverlap(cand, existing, skip...); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveClosingPrevious(ctx, cand, toClose); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "schedule_updated",
		Entity:   "schedule",
		EntityID: &cand.ID,
	})

	return cand, nil
}
