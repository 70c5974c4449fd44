package models

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/timeslot"
)

// Exceção por data: feriado (sem horários) ou grade customizada valendo
// sobre um intervalo fechado de datas. Sobrepõe qualquer agenda recorrente.
type SpecialSchedule struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"index" json:"barber_id"`

	StartDate string  `gorm:"size:10;not null" json:"start_date"`
	EndDate   *string `gorm:"size:10" json:"end_date"`

	IsHoliday bool   `json:"is_holiday"`
	TimeSlots string `gorm:"type:text" json:"time_slots"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EffectiveEnd devolve EndDate, ou StartDate quando ausente (exceção de um dia).
func (s *SpecialSchedule) EffectiveEnd() string {
	if s.EndDate == nil || *s.EndDate == "" {
		return s.StartDate
	}
	return *s.EndDate
}

func (s *SpecialSchedule) Covers(date string) bool {
	return date >= s.StartDate && date <= s.EffectiveEnd()
}

// Slots devolve a grade da exceção; feriado nunca tem horários,
// independente do que estiver gravado.
func (s *SpecialSchedule) Slots() []string {
	if s.IsHoliday {
		return nil
	}
	return timeslot.SplitList(s.TimeSlots)
}
