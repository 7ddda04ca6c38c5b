package http

import (
	"encoding/json"
	"net/http"

	"github.com/sheepai/hrms-backend-go/internal/domain/jobdesc"
	"github.com/sheepai/hrms-backend-go/internal/handler/http/response"
)

type JobDescriptionHandler interface {
	GenerateJD(w http.ResponseWriter, r *http.Request)
	ListRoles(w http.ResponseWriter, r *http.Request)
}

type jobDescriptionHandlerImpl struct {
	jdService jobdesc.JobDescriptionService
}

func NewJobDescriptionHandler(jdService jobdesc.JobDescriptionService) JobDescriptionHandler {
	return &jobDescriptionHandlerImpl{jdService: jdService}
}

// GenerateJD implements JobDescriptionHandler
func (h *jobDescriptionHandlerImpl) GenerateJD(w http.ResponseWriter, r *http.Request) {
	var req jobdesc.GenerateJDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.jdService.GenerateJD(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Job description generated successfully", result)
}

// ListRoles implements JobDescriptionHandler - roles for the email picker
func (h *jobDescriptionHandlerImpl) ListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.jdService.ListRoles(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, roles)
}
