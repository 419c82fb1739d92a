package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/groomly/salon-scheduler/internal/httperr"
)

var businessMessages = map[string]string{
	"past_or_too_soon":       "Horário no passado ou muito em cima da hora.",
	"outside_working_hours":  "Fora do horário de atendimento.",
	"blocked":                "Horário indisponível.",
	"slot_taken":             "Horário já reservado.",
	"too_late_to_cancel":     "Prazo de cancelamento expirado.",
	"invalid_transition":     "Mudança de status inválida.",
	"not_owner":              "Agendamento pertence a outro usuário.",
	"forbidden":              "Sem permissão para essa operação.",
	"not_found":              "Agendamento não encontrado.",
	"professional_not_found": "Profissional não encontrado.",
	"service_not_found":      "Serviço não encontrado.",
	"closed_that_day":        "Sem expediente nesse dia.",
	"too_far_in_future":      "Data além do horizonte de agendamento.",
	"invalid_date_or_time":   "Data ou hora inválida.",
}

// writeError maps a usecase failure to its HTTP shape. Business rule
// violations are expected and never logged; anything else is a 500.
func writeError(c *gin.Context, err error) {
	if be, ok := httperr.AsBusiness(err); ok {
		msg := businessMessages[be.Code]
		if msg == "" {
			msg = "Operação não permitida."
		}
		httperr.WriteBusiness(c, be, msg)
		return
	}

	httperr.Internal(c, "internal_error", "Erro inesperado.")
}
