package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book   *ucBooking.BookAppointment
	cancel *ucBooking.CancelAppointment
	repo   domain.Repository
}

func NewAppointmentHandler(
	book *ucBooking.BookAppointment,
	cancel *ucBooking.CancelAppointment,
	repo domain.Repository,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:   book,
		cancel: cancel,
		repo:   repo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookRequest struct {
	BarberID uint   `json:"barber_id" binding:"required"`
	Date     string `json:"date" binding:"required"` // YYYY-MM-DD
	Time     string `json:"time" binding:"required"` // HH:mm
}

type AdminBookRequest struct {
	BarberID    uint   `json:"barber_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	AppUserID   string `json:"app_user_id" binding:"required"`
	AppUserName string `json:"app_user_name" binding:"required"`
}

type AdminBookGuestRequest struct {
	BarberID  uint   `json:"barber_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
	GuestName string `json:"guest_name" binding:"required"`
}

// ======================================================
// CREATE (self-service)
// ======================================================

// POST /api/appointments — o usuário autenticado reserva para si.
// Equipe reservando em nome próprio não tem limite semanal.
func (h *AppointmentHandler) Create(c *gin.Context) {
	identity := middleware.IdentityFrom(c)

	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucBooking.BookInput{
		BarberID:           req.BarberID,
		Date:               req.Date,
		Time:               req.Time,
		AppUserID:          identity.UserID,
		AppUserName:        identity.Name,
		EnforceWeeklyLimit: !identity.Privileged(),
	})
	if err != nil {
		mapError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// ADMIN BOOK (em nome de um usuário)
// ======================================================

// POST /api/appointments/admin/book — equipe reserva para um usuário;
// o limite semanal do usuário continua valendo.
func (h *AppointmentHandler) AdminBook(c *gin.Context) {
	var req AdminBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucBooking.BookInput{
		BarberID:           req.BarberID,
		Date:               req.Date,
		Time:               req.Time,
		AppUserID:          req.AppUserID,
		AppUserName:        req.AppUserName,
		EnforceWeeklyLimit: true,
	})
	if err != nil {
		mapError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// ADMIN BOOK GUEST
// ======================================================

// POST /api/appointments/admin/book-guest — convidado sem cadastro;
// sem limite semanal, unicidade do slot continua valendo.
func (h *AppointmentHandler) AdminBookGuest(c *gin.Context) {
	var req AdminBookGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucBooking.BookInput{
		BarberID:  req.BarberID,
		Date:      req.Date,
		Time:      req.Time,
		GuestName: req.GuestName,
	})
	if err != nil {
		mapError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// DELETE (cancelamento)
// ======================================================

// DELETE /api/appointments?barber_id=&date=&time=
func (h *AppointmentHandler) Delete(c *gin.Context) {
	identity := middleware.IdentityFrom(c)

	barberID, err := strconv.ParseUint(c.Query("barber_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	dateStr := c.Query("date")
	timeStr := c.Query("time")
	if dateStr == "" || timeStr == "" {
		httperr.BadRequest(c, "missing_params", "Data e horário obrigatórios.")
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), ucBooking.CancelInput{
		BarberID: uint(barberID),
		Date:     dateStr,
		Time:     timeStr,
		Actor:    identity,
	})
	if err != nil {
		mapError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// LIST (staff, por data)
// ======================================================

// GET /api/appointments?barber_id=&date=
func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Query("barber_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	aps, err := h.repo.ListAppointmentsForDate(
		c.Request.Context(),
		uint(barberID),
		dateStr,
	)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, aps)
}
