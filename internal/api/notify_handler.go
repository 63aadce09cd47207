package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/saboracademico/backend/internal/domain"
	"github.com/saboracademico/backend/pkg/response"
)

// NotifyHandler serves the two push-notification endpoints. Both speak
// plain text, matching the clients already in the field.
type NotifyHandler struct {
	service *domain.NotificationService
	logger  *zap.Logger
}

func NewNotifyHandler(service *domain.NotificationService, logger *zap.Logger) *NotifyHandler {
	return &NotifyHandler{
		service: service,
		logger:  logger,
	}
}

// Notify sends one push notification to the device token in the request.
func (h *NotifyHandler) Notify(w http.ResponseWriter, r *http.Request) {
	var req domain.NotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	id, err := h.service.SendToToken(r.Context(), req)
	if err != nil {
		h.logger.Error("failed to send notification", zap.Error(err))
		response.Text(w, http.StatusInternalServerError, fmt.Sprintf("Error al enviar el mensaje: %v", err))
		return
	}

	response.Text(w, http.StatusOK, fmt.Sprintf("Mensaje enviado correctamente: %s", id))
}

// NotifyRole fans one push notification out to every user holding the
// requested role. An empty audience is 404, not an error.
func (h *NotifyHandler) NotifyRole(w http.ResponseWriter, r *http.Request) {
	var req domain.RoleNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	count, err := h.service.SendToRole(r.Context(), req)
	if errors.Is(err, domain.ErrNoRecipients) {
		response.Text(w, http.StatusNotFound, "No hay usuarios a los que enviar un mensaje")
		return
	}
	if err != nil {
		h.logger.Error("failed to send role notification", zap.String("role", req.Role), zap.Error(err))
		response.Text(w, http.StatusInternalServerError, fmt.Sprintf("Error al enviar mensaje: %v", err))
		return
	}

	response.Text(w, http.StatusOK, fmt.Sprintf("Mensajes enviados: %d", count))
}
