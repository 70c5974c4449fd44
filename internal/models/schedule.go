package models

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/timeslot"
)

// Agenda semanal recorrente: um dia da semana, lista de horários "HH:MM"
// e um intervalo de vigência [StartDate, EndDate]. EndDate nulo = sem fim.
type Schedule struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"index:idx_schedules_barber_day" json:"barber_id"`

	// 0 = domingo .. 6 = sábado (time.Weekday)
	DayOfWeek int `gorm:"index:idx_schedules_barber_day" json:"day_of_week"`

	// "09:00,09:30,10:00" — horários como strings, nunca timestamps
	TimeSlots string `gorm:"type:text" json:"time_slots"`

	StartDate string  `gorm:"size:10;not null" json:"start_date"`
	EndDate   *string `gorm:"size:10" json:"end_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Slots devolve os horários ordenados e normalizados.
func (s *Schedule) Slots() []string {
	return timeslot.SplitList(s.TimeSlots)
}

// OpenEnded indica vigência sem data final.
func (s *Schedule) OpenEnded() bool {
	return s.EndDate == nil || *s.EndDate == ""
}

// Covers verifica se a data (ISO "2006-01-02") cai dentro da vigência.
// Datas ISO zero-padded comparam corretamente como strings.
func (s *Schedule) Covers(date string) bool {
	if date < s.StartDate {
		return false
	}
	return s.OpenEnded() || date <= *s.EndDate
}
