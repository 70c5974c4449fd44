package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// mensagens por código de negócio
var businessMessages = map[string]string{
	"invalid_date":               "Data inválida.",
	"invalid_time":               "Horário inválido.",
	"invalid_range":              "Intervalo de datas inválido.",
	"invalid_day_of_week":        "Dia da semana inválido.",
	"day_of_week_mismatch":       "Data não cai no dia da semana informado.",
	"identity_conflict":          "Informe usuário ou convidado, nunca os dois.",
	"identity_required":          "Identidade do agendamento obrigatória.",
	"guest_name_too_long":        "Nome de convidado longo demais.",
	"slot_taken":                 "Horário já reservado.",
	"schedule_overlap":           "Conflito com agenda existente.",
	"special_overlap":            "Conflito com exceção existente.",
	"barber_not_found":           "Barbeiro não encontrado.",
	"schedule_not_found":         "Agenda não encontrada.",
	"special_schedule_not_found": "Exceção não encontrada.",
	"appointment_not_found":      "Agendamento não encontrado.",
	"not_allowed":                "Operação não permitida.",
}

var businessStatus = map[string]int{
	"slot_taken":                 http.StatusConflict,
	"schedule_overlap":           http.StatusConflict,
	"special_overlap":            http.StatusConflict,
	"barber_not_found":           http.StatusNotFound,
	"schedule_not_found":         http.StatusNotFound,
	"special_schedule_not_found": http.StatusNotFound,
	"appointment_not_found":      http.StatusNotFound,
	"not_allowed":                http.StatusForbidden,
}

// mapError traduz erro de use case em resposta HTTP. O limite semanal sai
// como 409 com os agendamentos conflitantes no corpo, para o cliente
// oferecer o fluxo de remarcação (cancela o antigo, reserva o novo).
func mapError(c *gin.Context, err error) {

	var weekly *domain.WeeklyLimitError
	if errors.As(err, &weekly) {
		c.JSON(http.StatusConflict, gin.H{
			"error_code": "weekly_limit_reached",
			"message":    "Você já tem um agendamento nessa semana.",
			"conflicts":  weekly.Existing,
		})
		return
	}

	if code, ok := httperr.BusinessCode(err); ok {
		status, found := businessStatus[code]
		if !found {
			status = http.StatusBadRequest
		}
		msg, found := businessMessages[code]
		if !found {
			msg = "Requisição inválida."
		}
		httperr.Write(c, status, code, msg)
		return
	}

	httperr.Internal(c, "internal_error", "Erro interno, tente novamente.")
}
