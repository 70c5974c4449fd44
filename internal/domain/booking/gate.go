package booking

import (
	"fmt"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timeslot"
)

// ======================================================
// Identidade
// ======================================================

const (
	RoleUser   = "user"
	RoleBarber = "barber"
	RoleAdmin  = "admin"
)

// Identity é o que sobra da autenticação externa: claims verificadas.
type Identity struct {
	UserID string
	Name   string
	Role   string
}

// Privileged indica papel elevado (equipe agindo em nome próprio não
// está sujeita ao limite semanal).
func (i Identity) Privileged() bool {
	return i.Role == RoleBarber || i.Role == RoleAdmin
}

// ======================================================
// Regras de admissão de agendamento
// ======================================================

const MaxGuestNameLen = 15

// WeeklyLimitError rejeita a segunda reserva na mesma semana e carrega os
// agendamentos conflitantes para o fluxo de remarcação (cancela e reagenda).
type WeeklyLimitError struct {
	Existing []models.Appointment
}

func (e *WeeklyLimitError) Error() string {
	return "weekly_limit_reached"
}

// ValidateIdentityFields garante exatamente uma identidade: usuário
// (id + nome) ou convidado, nunca ambos, nunca nenhum.
func ValidateIdentityFields(ap *models.Appointment) error {
	user := ap.ForUser()
	guest := ap.ForGuest()

	switch {
	case user && guest:
		return httperr.ErrBusiness("identity_conflict")
	case !user && !guest:
		return httperr.ErrBusiness("identity_required")
	case user && (ap.AppUserName == nil || *ap.AppUserName == ""):
		return httperr.ErrBusiness("identity_required")
	case guest && len(*ap.GuestName) > MaxGuestNameLen:
		return httperr.ErrBusiness("guest_name_too_long")
	}

	return nil
}

// ValidateSlot rejeita data/hora malformadas antes de qualquer escrita.
func ValidateSlot(date, timeStr string) error {
	if !timeslot.IsValidDate(date) {
		return httperr.ErrBusiness("invalid_date")
	}
	if !timeslot.IsValidTime(timeStr) {
		return httperr.ErrBusiness("invalid_time")
	}
	return nil
}

// String implementa fmt.Stringer para logs.
func (i Identity) String() string {
	return fmt.Sprintf("%s(%s)", i.UserID, i.Role)
}
