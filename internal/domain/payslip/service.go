package payslip

import "context"

type PayslipService interface {
	GeneratePayslip(ctx context.Context, req GeneratePayslipRequest) (PayslipResponse, error)
}
