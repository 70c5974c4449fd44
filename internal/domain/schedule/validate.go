package schedule

import (
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timeslot"
)

// ======================================================
// Validação de agenda recorrente
// ======================================================

// ValidateRecurring checa o candidato isoladamente: formato das datas e
// horários, dia da semana coerente com as datas, intervalo não invertido.
func ValidateRecurring(cand *models.Schedule) error {
	if cand.DayOfWeek < 0 || cand.DayOfWeek > 6 {
		return httperr.ErrBusiness("invalid_day_of_week")
	}

	if !timeslot.IsValidDate(cand.StartDate) {
		return httperr.ErrBusiness("invalid_date")
	}

	wd, _ := timeslot.Weekday(cand.StartDate)
	if int(wd) != cand.DayOfWeek {
		return httperr.ErrBusiness("day_of_week_mismatch")
	}

	if !cand.OpenEnded() {
		if !timeslot.IsValidDate(*cand.EndDate) {
			return httperr.ErrBusiness("invalid_date")
		}
		if *cand.EndDate < cand.StartDate {
			return httperr.ErrBusiness("invalid_range")
		}
		ewd, _ := timeslot.Weekday(*cand.EndDate)
		if int(ewd) != cand.DayOfWeek {
			return httperr.ErrBusiness("day_of_week_mismatch")
		}
	}

	for _, slot := range timeslot.SplitList(cand.TimeSlots) {
		if !timeslot.IsValidTime(slot) {
			return httperr.ErrBusiness("invalid_time")
		}
	}

	return nil
}

// FindOpenEnded localiza a agenda aberta existente para o mesmo
// (barbeiro, dia), ignorando o próprio registro em update.
func FindOpenEnded(existing []models.Schedule, excludeID uint) *models.Schedule {
	for i := range existing {
		s := &existing[i]
		if s.ID != excludeID && s.OpenEnded() {
			return s
		}
	}
	return nil
}

// ResolveOpenEnded decide o destino de um candidato sem data final: se já
// existe agenda aberta anterior, ela é encerrada na véspera do início do
// candidato (o novo padrão a supera dali em diante). Uma aberta que começa
// na mesma data ou depois não tem como ser encerrada — conflito.
// Devolve a agenda a encerrar (já com EndDate ajustado) ou nil.
func ResolveOpenEnded(
	cand *models.Schedule,
	existing []models.Schedule,
) (*models.Schedule, error) {

	prior := FindOpenEnded(existing, cand.ID)
	if prior == nil {
		return nil, nil
	}

	if prior.StartDate >= cand.StartDate {
		return nil, httperr.ErrBusiness("schedule_overlap")
	}

	end, err := timeslot.PrevDay(cand.StartDate)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	closed := *prior
	closed.EndDate = &end
	return &closed, nil
}

// CheckOverlap aplica o teste de interseção de intervalos (bordas
// inclusivas) contra as demais agendas do mesmo (barbeiro, dia). Agendas
// em skip (a recém-encerrada) e o próprio registro ficam de fora; vigência
// aberta conta como estendida ao infinito.
func CheckOverlap(
	cand *models.Schedule,
	existing []models.Schedule,
	skipIDs ...uint,
) error {

	skip := map[uint]bool{cand.ID: true}
	for _, id := range skipIDs {
		skip[id] = true
	}

	for i := range existing {
		s := &existing[i]
		if skip[s.ID] {
			continue
		}

		// existente termina antes do candidato começar → sem conflito
		if !s.OpenEnded() && *s.EndDate < cand.StartDate {
			continue
		}

		// candidato termina antes do existente começar → sem conflito
		if !cand.OpenEnded() && *cand.EndDate < s.StartDate {
			continue
		}

		return httperr.ErrBusiness("schedule_overlap")
	}

	return nil
}

// ======================================================
// Validação de exceção por data
// ======================================================

func ValidateSpecial(cand *models.SpecialSchedule) error {
	if !timeslot.IsValidDate(cand.StartDate) {
		return httperr.ErrBusiness("invalid_date")
	}

	if cand.EndDate != nil && *cand.EndDate != "" {
		if !timeslot.IsValidDate(*cand.EndDate) {
			return httperr.ErrBusiness("invalid_date")
		}
		if *cand.EndDate < cand.StartDate {
			return httperr.ErrBusiness("invalid_range")
		}
	}

	if !cand.IsHoliday {
		for _, slot := range timeslot.SplitList(cand.TimeSlots) {
			if !timeslot.IsValidTime(slot) {
				return httperr.ErrBusiness("invalid_time")
			}
		}
	}

	return nil
}

// CheckSpecialOverlap rejeita qualquer interseção de datas entre exceções
// do mesmo barbeiro — encostar na borda já conta como conflito.
func CheckSpecialOverlap(
	cand *models.SpecialSchedule,
	existing []models.SpecialSchedule,
) error {

	for i := range existing {
		s := &existing[i]
		if s.ID == cand.ID {
			continue
		}
		if cand.StartDate <= s.EffectiveEnd() && s.StartDate <= cand.EffectiveEnd() {
			return httperr.ErrBusiness("special_overlap")
		}
	}

	return nil
}
