package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/saboracademico/backend/internal/domain"
	"github.com/saboracademico/backend/pkg/response"
)

// mailFailure is the body both mail endpoints return when the send fails.
// Note the status stays 200: these endpoints report failure only through
// the seEnvio flag, unlike the notify endpoints. Existing clients depend
// on it.
type mailFailure struct {
	Mensaje string `json:"mensaje"`
	SeEnvio bool   `json:"seEnvio"`
}

// MailHandler serves the two account-status mail endpoints.
type MailHandler struct {
	service *domain.MailService
	logger  *zap.Logger
}

func NewMailHandler(service *domain.MailService, logger *zap.Logger) *MailHandler {
	return &MailHandler{
		service: service,
		logger:  logger,
	}
}

// SendDecision mails the accepted or pending-approval message, picked by
// the aceptacion flag.
func (h *MailHandler) SendDecision(w http.ResponseWriter, r *http.Request) {
	var req domain.MailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	receipt, err := h.service.SendDecision(r.Context(), req)
	if err != nil {
		h.logger.Error("failed to send decision mail", zap.String("to", req.Mail), zap.Error(err))
		response.OK(w, mailFailure{Mensaje: err.Error()})
		return
	}

	response.OK(w, receipt)
}

// SendRejection always mails the rejection message; the aceptacion field
// is accepted but ignored.
func (h *MailHandler) SendRejection(w http.ResponseWriter, r *http.Request) {
	var req domain.MailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	receipt, err := h.service.SendRejection(r.Context(), req)
	if err != nil {
		h.logger.Error("failed to send rejection mail", zap.String("to", req.Mail), zap.Error(err))
		response.OK(w, mailFailure{Mensaje: err.Error()})
		return
	}

	response.OK(w, receipt)
}
