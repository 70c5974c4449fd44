package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/usecase/availability"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	getAvailableTimes *availability.GetAvailableTimes
}

func NewAvailabilityHandler(
	getAvailableTimes *availability.GetAvailableTimes,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		getAvailableTimes: getAvailableTimes,
	}
}

// GET /api/barbers/:id/available-times?day=...&date=YYYY-MM-DD
//
// "day" continua aceito por compatibilidade, mas o dia da semana é sempre
// derivado da própria data — o valor do cliente não é usado.
func (h *AvailabilityHandler) GetAvailableTimes(c *gin.Context) {
	barberID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	times, err := h.getAvailableTimes.Execute(
		c.Request.Context(),
		uint(barberID),
		dateStr,
	)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		// falha de infraestrutura nunca vira "sem horários"
		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"times": times,
	})
}
