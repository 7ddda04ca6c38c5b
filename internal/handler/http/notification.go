package http

import (
	"encoding/json"
	"net/http"

	"github.com/sheepai/hrms-backend-go/internal/domain/notification"
	"github.com/sheepai/hrms-backend-go/internal/handler/http/response"
)

type NotificationHandler interface {
	SendEmail(w http.ResponseWriter, r *http.Request)
}

type notificationHandlerImpl struct {
	notificationService notification.NotificationService
}

func NewNotificationHandler(notificationService notification.NotificationService) NotificationHandler {
	return &notificationHandlerImpl{notificationService: notificationService}
}

// SendEmail implements NotificationHandler
func (h *notificationHandlerImpl) SendEmail(w http.ResponseWriter, r *http.Request) {
	var req notification.SendEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.notificationService.SendEmail(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Email sent successfully", result)
}
