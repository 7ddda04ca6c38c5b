package payslip

import (
	"github.com/shopspring/decimal"

	"github.com/sheepai/hrms-backend-go/internal/pkg/validator"
)

type GeneratePayslipRequest struct {
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    string          `json:"employee_name,omitempty"`
	Basic           decimal.Decimal `json:"basic"`
	HRA             decimal.Decimal `json:"hra"`
	Allowance       decimal.Decimal `json:"allowance"`
	Bonus           decimal.Decimal `json:"bonus"`
	PF              decimal.Decimal `json:"pf"`
	TDS             decimal.Decimal `json:"tds"`
	ProfessionalTax decimal.Decimal `json:"pt"`
}

func (r *GeneratePayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	for _, f := range []struct {
		name   string
		amount decimal.Decimal
	}{
		{"basic", r.Basic}, {"hra", r.HRA}, {"allowance", r.Allowance}, {"bonus", r.Bonus},
		{"pf", r.PF}, {"tds", r.TDS}, {"pt", r.ProfessionalTax},
	} {
		if f.amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: f.name, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *GeneratePayslipRequest) Input() CompensationInput {
	return CompensationInput{
		Basic:           r.Basic,
		HRA:             r.HRA,
		Allowance:       r.Allowance,
		Bonus:           r.Bonus,
		PF:              r.PF,
		TDS:             r.TDS,
		ProfessionalTax: r.ProfessionalTax,
	}
}

type PayslipResponse struct {
	File            string          `json:"file"`
	EmployeeID      string          `json:"employee_id"`
	Gross           decimal.Decimal `json:"gross"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	Net             decimal.Decimal `json:"net"`
	NetInWords      string          `json:"net_in_words"`
}
