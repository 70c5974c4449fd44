package booking

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timeslot"
)

type CancelInput struct {
	BarberID uint
	Date     string
	Time     string

	Actor domain.Identity
}

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute remove o agendamento do slot. Equipe cancela qualquer um;
// usuário comum só cancela o próprio.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	in CancelInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.FindAppointment(
		ctx,
		in.BarberID,
		in.Date,
		timeslot.Normalize(in.Time),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if !in.Actor.Privileged() {
		if ap.AppUserID == nil || *ap.AppUserID != in.Actor.UserID {
			return nil, httperr.ErrBusiness("not_allowed")
		}
	}

	if err := uc.repo.DeleteAppointment(ctx, ap.ID); err != nil {
		return nil, err
	}

	actorID := in.Actor.UserID
	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"barber_id": ap.BarberID,
			"date":      ap.Date,
			"time":      ap.Time,
		},
	})

	return ap, nil
}
