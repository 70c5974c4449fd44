package schedule

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

type DeleteSchedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteSchedule(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteSchedule {
	return &DeleteSchedule{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteSchedule) Execute(
	ctx context.Context,
	actorID string,
	id uint,
) error {

	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return httperr.ErrBusiness("schedule_not_found")
	}

	if err := uc.repo.Delete(ctx, s.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "schedule_deleted",
		Entity:   "schedule",
		EntityID: &s.ID,
	})

	return nil
}
