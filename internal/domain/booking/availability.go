package booking

import (
	"sort"

	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timeslot"
)

// ======================================================
// Resolução de disponibilidade (função pura)
// ======================================================

// ResolveSlots computa os horários livres de um barbeiro numa data.
//
// Precedência, da mais alta para a mais baixa:
//  1. exceção por data cobrindo a data — feriado zera tudo, senão vale a
//     grade da exceção;
//  2. agenda recorrente do dia da semana — entre as vigentes, a fechada de
//     início mais recente ganha da aberta (override limitado vence o padrão);
//  3. nada vigente — lista vazia.
//
// Por fim remove os horários já agendados, comparando de forma normalizada
// (trim + caixa), e devolve em ordem crescente. Ausência de dados é sempre
// resultado vazio, nunca erro.
func ResolveSlots(
	date string,
	specials []models.SpecialSchedule,
	schedules []models.Schedule,
	bookedTimes []string,
) []string {

	candidate := resolveCandidateSlots(date, specials, schedules)
	if len(candidate) == 0 {
		return []string{}
	}

	booked := make(map[string]bool, len(bookedTimes))
	for _, t := range bookedTimes {
		booked[timeslot.Normalize(t)] = true
	}

	free := make([]string, 0, len(candidate))
	for _, slot := range candidate {
		if !booked[timeslot.Normalize(slot)] {
			free = append(free, slot)
		}
	}

	sort.Strings(free)
	return free
}

func resolveCandidateSlots(
	date string,
	specials []models.SpecialSchedule,
	schedules []models.Schedule,
) []string {

	// 1) exceção por data sobrepõe qualquer agenda recorrente
	for i := range specials {
		if specials[i].Covers(date) {
			if specials[i].IsHoliday {
				return nil
			}
			return specials[i].Slots()
		}
	}

	// 2) agenda recorrente vigente na data
	if s := pickSchedule(date, schedules); s != nil {
		return s.Slots()
	}

	return nil
}

// pickSchedule escolhe a agenda vigente: fechada de início mais recente,
// senão aberta de início mais recente.
func pickSchedule(date string, schedules []models.Schedule) *models.Schedule {
	var closed, open *models.Schedule

	for i := range schedules {
		s := &schedules[i]
		if !s.Covers(date) {
			continue
		}
		if s.OpenEnded() {
			if open == nil || s.StartDate > open.StartDate {
				open = s
			}
		} else {
			if closed == nil || s.StartDate > closed.StartDate {
				closed = s
			}
		}
	}

	if closed != nil {
		return closed
	}
	return open
}
