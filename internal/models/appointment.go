package models

import "time"

// Agendamento de um slot exato (barbeiro + data + hora). A unicidade do
// trio é garantida por índice único no banco — é ela que impede o
// double-booking entre réplicas.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint   `gorm:"uniqueIndex:idx_appointments_slot" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Date string `gorm:"size:10;uniqueIndex:idx_appointments_slot" json:"date"`
	Time string `gorm:"size:5;uniqueIndex:idx_appointments_slot" json:"time"`

	// Identidade: ou usuário autenticado (id + nome) ou convidado, nunca os dois.
	AppUserID   *string `gorm:"size:64;index" json:"app_user_id"`
	AppUserName *string `gorm:"size:100" json:"app_user_name"`
	GuestName   *string `gorm:"size:15" json:"guest_name"`

	CreatedAt time.Time `json:"created_at"`
}

// ForUser indica agendamento de usuário identificado.
func (a *Appointment) ForUser() bool {
	return a.AppUserID != nil && *a.AppUserID != ""
}

// ForGuest indica agendamento de convidado.
func (a *Appointment) ForGuest() bool {
	return a.GuestName != nil && *a.GuestName != ""
}
