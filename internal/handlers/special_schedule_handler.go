package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucSchedule "github.com/BruksfildServices01/barber-booking/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type SpecialScheduleHandler struct {
	create *ucSchedule.CreateSpecialSchedule
	update *ucSchedule.UpdateSpecialSchedule
	repo   domain.Repository
}

func NewSpecialScheduleHandler(
	create *ucSchedule.CreateSpecialSchedule,
	update *ucSchedule.UpdateSpecialSchedule,
	repo domain.Repository,
) *SpecialScheduleHandler {
	return &SpecialScheduleHandler{
		create: create,
		update: update,
		repo:   repo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SpecialScheduleRequest struct {
	BarberID  uint     `json:"barber_id" binding:"required"`
	StartDate string   `json:"start_date" binding:"required"`
	EndDate   *string  `json:"end_date"` // ausente = só o dia inicial
	IsHoliday bool     `json:"is_holiday"`
	TimeSlots []string `json:"time_slots"`
}

func (r SpecialScheduleRequest) toInput() ucSchedule.SpecialScheduleInput {
	return ucSchedule.SpecialScheduleInput{
		BarberID:  r.BarberID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		IsHoliday: r.IsHoliday,
		TimeSlots: r.TimeSlots,
	}
}

// ======================================================
// CREATE
// ======================================================

// POST /api/special-schedules
func (h *SpecialScheduleHandler) Create(c *gin.Context) {
	identity := middleware.IdentityFrom(c)

	var req SpecialScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	s, err := h.create.Execute(c.Request.Context(), identity.UserID, req.toInput())
	if err != nil {
		mapError(c, err)
		return
	}

	httpresp.Created(c, s)
}

// ======================================================
// UPDATE
// ======================================================

// PUT /api/special-schedules/:id
func (h *SpecialScheduleHandler) Update(c *gin.Context) {
	identity := middleware.IdentityFrom(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req SpecialScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	s, err := h.update.Execute(c.Request.Context(), identity.UserID, uint(id), req.toInput())
	if err != nil {
		mapError(c, err)
		return
	}

	httpresp.OK(c, s)
}

// ======================================================
// LIST
// ======================================================

// GET /api/special-schedules?barber_id=
func (h *SpecialScheduleHandler) List(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Query("barber_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	specials, err := h.repo.ListSpecialsByBarber(c.Request.Context(), uint(barberID))
	if err != nil {
		httperr.Internal(c, "failed_to_list_specials", "Erro ao listar exceções.")
		return
	}

	httpresp.List(c, specials)
}
