package availability

import (
	"context"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/timeslot"
)

type GetAvailableTimes struct {
	repo domain.Repository
}

func NewGetAvailableTimes(repo domain.Repository) *GetAvailableTimes {
	return &GetAvailableTimes{repo: repo}
}

// Execute devolve os horários livres do barbeiro na data, em ordem
// crescente. Barbeiro desconhecido ou sem agenda → lista vazia, nunca erro;
// só falha de infraestrutura propaga como erro.
//
// O dia da semana é sempre derivado da data aqui dentro — o parâmetro
// redundante que o cliente manda na query não é confiável.
func (uc *GetAvailableTimes) Execute(
	ctx context.Context,
	barberID uint,
	date string,
) ([]string, error) {

	if !timeslot.IsValidDate(date) {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	weekday, err := timeslot.Weekday(date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	specials, err := uc.repo.ListSpecialSchedules(ctx, barberID)
	if err != nil {
		return nil, err
	}

	schedules, err := uc.repo.ListSchedulesForDay(ctx, barberID, int(weekday))
	if err != nil {
		return nil, err
	}

	booked, err := uc.repo.ListBookedTimes(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	return domain.ResolveSlots(date, specials, schedules, booked), nil
}
