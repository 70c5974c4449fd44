package booking

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timeslot"
)

// ======================================================
// INPUT
// ======================================================

type BookInput struct {
	BarberID uint

	Date string // YYYY-MM-DD
	Time string // HH:mm

	// Identidade do dono do agendamento: usuário OU convidado.
	AppUserID   string
	AppUserName string
	GuestName   string

	// Equipe agindo em nome próprio e convidados não têm limite semanal.
	EnforceWeeklyLimit bool
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo      domain.Repository
	audit     *audit.Dispatcher
	weekStart time.Weekday
}

func NewBookAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	weekStart time.Weekday,
) *BookAppointment {
	return &BookAppointment{
		repo:      repo,
		audit:     audit,
		weekStart: weekStart,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Data e hora bem formadas, hora normalizada
	// --------------------------------------------------
	if err := domain.ValidateSlot(in.Date, in.Time); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		BarberID: in.BarberID,
		Date:     strings.TrimSpace(in.Date),
		Time:     timeslot.Normalize(in.Time),
	}

	if in.AppUserID != "" {
		userID := in.AppUserID
		userName := in.AppUserName
		ap.AppUserID = &userID
		ap.AppUserName = &userName
	}
	if in.GuestName != "" {
		guest := strings.TrimSpace(in.GuestName)
		ap.GuestName = &guest
	}

	// --------------------------------------------------
	// 2. Usuário XOR convidado, nome de convidado limitado
	// --------------------------------------------------
	if err := domain.ValidateIdentityFields(ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Barbeiro precisa existir
	// --------------------------------------------------
	if _, err := uc.repo.GetBarberByID(ctx, in.BarberID); err != nil {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	// --------------------------------------------------
	// 4. Limite de um agendamento por semana
	// --------------------------------------------------
	if ap.ForUser() && in.EnforceWeeklyLimit {
		weekStart, weekEnd, err := timeslot.WeekWindow(ap.Date, uc.weekStart)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}

		existing, err := uc.repo.ListUserAppointmentsBetween(
			ctx,
			*ap.AppUserID,
			weekStart,
			weekEnd,
		)
		if err != nil {
			return nil, err
		}

		if len(existing) > 0 {
			return nil, &domain.WeeklyLimitError{Existing: existing}
		}
	}

	// --------------------------------------------------
	// 5. Reivindicação atômica do slot
	// --------------------------------------------------
	if err := uc.repo.CreateAppointmentClaimingSlot(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   ap.AppUserID,
		Action:   "appointment_booked",
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
