package http

import (
	"encoding/json"
	"net/http"

	"github.com/sheepai/hrms-backend-go/internal/domain/payslip"
	"github.com/sheepai/hrms-backend-go/internal/handler/http/response"
)

type PayslipHandler interface {
	GeneratePayslip(w http.ResponseWriter, r *http.Request)
}

type payslipHandlerImpl struct {
	payslipService payslip.PayslipService
}

func NewPayslipHandler(payslipService payslip.PayslipService) PayslipHandler {
	return &payslipHandlerImpl{payslipService: payslipService}
}

// GeneratePayslip implements PayslipHandler
func (h *payslipHandlerImpl) GeneratePayslip(w http.ResponseWriter, r *http.Request) {
	var req payslip.GeneratePayslipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payslipService.GeneratePayslip(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary slip generated successfully", result)
}
