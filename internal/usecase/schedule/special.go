package schedule

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timeslot"
)

// ======================================================
// INPUT
// ======================================================

type SpecialScheduleInput struct {
	BarberID  uint
	StartDate string
	EndDate   *string // ausente = exceção de um dia
	IsHoliday bool
	TimeSlots []string
}

func (in SpecialScheduleInput) toModel(id uint) *models.SpecialSchedule {
	end := in.EndDate
	if end != nil && *end == "" {
		end = nil
	}
	slots := ""
	if !in.IsHoliday {
		slots = timeslot.JoinList(in.TimeSlots)
	}
	return &models.SpecialSchedule{
		ID:        id,
		BarberID:  in.BarberID,
		StartDate: in.StartDate,
		EndDate:   end,
		IsHoliday: in.IsHoliday,
		TimeSlots: slots,
	}
}

// ======================================================
// CREATE
// ======================================================

type CreateSpecialSchedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateSpecialSchedule(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateSpecialSchedule {
	return &CreateSpecialSchedule{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateSpecialSchedule) Execute(
	ctx context.Context,
	actorID string,
	in SpecialScheduleInput,
) (*models.SpecialSchedule, error) {

	cand := in.toModel(0)

	if err := domain.ValidateSpecial(cand); err != nil {
		return nil, err
	}

	existing, err := uc.repo.ListSpecialsByBarber(ctx, cand.BarberID)
	if err != nil {
		return nil, err
	}

	if err := domain.CheckSpecialOverlap(cand, existing); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateSpecial(ctx, cand); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "special_schedule_created",
		Entity:   "special_schedule",
		EntityID: &cand.ID,
		Metadata: map[string]any{
			"barber_id":  cand.BarberID,
			"start_date": cand.StartDate,
			"is_holiday": cand.IsHoliday,
		},
	})

	return cand, nil
}

// ======================================================
// UPDATE
// ======================================================

type UpdateSpecialSchedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateSpecialSchedule(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateSpecialSchedule {
	return &UpdateSpecialSchedule{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateSpecialSchedule) Execute(
	ctx context.Context,
	actorID string,
	id uint,
	in SpecialScheduleInput,
) (*models.SpecialSchedule, error) {

	current, err := uc.repo.GetSpecialByID(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness("special_schedule_not_found")
	}

	in.BarberID = current.BarberID
	cand := in.toModel(current.ID)

	if err := domain.ValidateSpecial(cand); err != nil {
		return nil, err
	}

	existing, err := uc.repo.ListSpecialsByBarber(ctx, cand.BarberID)
	if err != nil {
		return nil, err
	}

	if err := domain.CheckSpecialOverlap(cand, existing); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveSpecial(ctx, cand); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "special_schedule_updated",
		Entity:   "special_schedule",
		EntityID: &cand.ID,
	})

	return cand, nil
}
