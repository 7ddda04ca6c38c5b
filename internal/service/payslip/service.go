package payslip

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sheepai/hrms-backend-go/internal/domain/document"
	"github.com/sheepai/hrms-backend-go/internal/domain/employee"
	"github.com/sheepai/hrms-backend-go/internal/domain/payslip"
)

type PayslipServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	renderer     document.Renderer
}

func NewPayslipService(employeeRepo employee.EmployeeRepository, renderer document.Renderer) payslip.PayslipService {
	return &PayslipServiceImpl{
		employeeRepo: employeeRepo,
		renderer:     renderer,
	}
}

func (s *PayslipServiceImpl) GeneratePayslip(ctx context.Context, req payslip.GeneratePayslipRequest) (payslip.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payslip.PayslipResponse{}, err
	}

	// A store miss is not fatal: the slip renders with blank descriptive
	// fields, matching the soft-miss rule for enrichment.
	detail, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		detail = employee.Employee{}
	} else if err != nil {
		return payslip.PayslipResponse{}, err
	}
	detail.ID = req.EmployeeID
	if req.EmployeeName != "" {
		detail.Name = req.EmployeeName
	}

	input := req.Input()
	computation := payslip.Compute(input)

	path, err := s.renderer.RenderSalarySlip(ctx, payslip.Slip{
		Detail:      detail,
		Input:       input,
		Computation: computation,
	})
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	slog.Info("Salary slip generated", "employee_id", req.EmployeeID, "file", path)
	return payslip.PayslipResponse{
		File:            path,
		EmployeeID:      req.EmployeeID,
		Gross:           computation.Gross,
		TotalDeductions: computation.TotalDeductions,
		Net:             computation.Net,
		NetInWords:      computation.NetInWords,
	}, nil
}
