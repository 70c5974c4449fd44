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

type ScheduleHandler struct {
	create *ucSchedule.CreateSchedule
	update *ucSchedule.UpdateSchedule
	delete *ucSchedule.DeleteSchedule
	repo   domain.Repository
}

func NewScheduleHandler(
	create *ucSchedule.CreateSchedule,
	update *ucSchedule.UpdateSchedule,
	delete *ucSchedule.DeleteSchedule,
	repo domain.Repository,
) *ScheduleHandler {
	return &ScheduleHandler{
		create: create,
		update: update,
		delete: delete,
		repo:   repo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ScheduleRequest struct {
	BarberID  uint     `json:"barber_id" binding:"required"`
	DayOfWeek *int     `json:"day_of_week" binding:"required,min=0,max=6"`
	TimeSlots []string `json:"time_slots" binding:"required"`
	StartDate string   `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate   *string  `json:"end_date"`                      // ausente = sem fim
}

func (r ScheduleRequest) toInput() ucSchedule.ScheduleInput {
	return ucSchedule.ScheduleInput{
		BarberID:  r.BarberID,
		DayOfWeek: *r.DayOfWeek,
		TimeSlots: r.TimeSlots,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
}

// ======================================================
// CREATE
// ======================================================

// POST /api/schedules
func (h *ScheduleHandler) Create(c *gin.Context) {
	identity := middleware.IdentityFrom(c)

	var req ScheduleRequest
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
// UPDATE (replace completo)
// ======================================================

// PUT /api/schedules/:id
func (h *ScheduleHandler) Update(c *gin.Context) {
	identity := middleware.IdentityFrom(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req ScheduleRequest
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
// DELETE
// ======================================================

// DELETE /api/schedules/:id
func (h *ScheduleHandler) Delete(c *gin.Context) {
	identity := middleware.IdentityFrom(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.delete.Execute(c.Request.Context(), identity.UserID, uint(id)); err != nil {
		mapError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"status": "ok"})
}

// ======================================================
// LIST
// ======================================================

// GET /api/schedules?barber_id=
func (h *ScheduleHandler) List(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Query("barber_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	schedules, err := h.repo.ListByBarber(c.Request.Context(), uint(barberID))
	if err != nil {
		httperr.Internal(c, "failed_to_list_schedules", "Erro ao listar agendas.")
		return
	}

	httpresp.List(c, schedules)
}
