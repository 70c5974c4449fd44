package schedule

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timeslot"
)

// ======================================================
// INPUT
// ======================================================

type ScheduleInput struct {
	BarberID  uint
	DayOfWeek int
	TimeSlots []string
	StartDate string
	EndDate   *string // nil = sem fim
}

func (in ScheduleInput) toModel(id uint) *models.Schedule {
	end := in.EndDate
	if end != nil && *end == "" {
		end = nil
	}
	return &models.Schedule{
		ID:        id,
		BarberID:  in.BarberID,
		DayOfWeek: in.DayOfWeek,
		TimeSlots: timeslot.JoinList(in.TimeSlots),
		StartDate: in.StartDate,
		EndDate:   end,
	}
}

// ======================================================
// CREATE
// ======================================================

type CreateSchedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateSchedule(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateSchedule {
	return &CreateSchedule{
		repo:  repo,
		audit: audit,
	}
}

// Execute cria uma agenda recorrente. Candidato sem data final supera a
// agenda aberta vigente: ela é encerrada na véspera do novo início, na
// mesma transação — não é erro.
func (uc *CreateSchedule) Execute(
	ctx context.Context,
	actorID string,
	in ScheduleInput,
) (*models.Schedule, error) {

	cand := in.toModel(0)

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

	if err := uc.repo.CreateClosingPrevious(ctx, cand, toClose); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "schedule_created",
		Entity:   "schedule",
		EntityID: &cand.ID,
		Metadata: map[string]any{
			"barber_id":   cand.BarberID,
			"day_of_week": cand.DayOfWeek,
			"start_date":  cand.StartDate,
		},
	})

	return cand, nil
}
