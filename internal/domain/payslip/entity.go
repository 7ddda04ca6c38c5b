package payslip

import (
	"github.com/shopspring/decimal"

	"github.com/sheepai/hrms-backend-go/internal/domain/employee"
)

// CompensationInput carries the raw monetary figures submitted for one
// slip. Absent fields stay at decimal zero; nothing here is persisted.
type CompensationInput struct {
	Basic           decimal.Decimal
	HRA             decimal.Decimal
	Allowance       decimal.Decimal
	Bonus           decimal.Decimal
	PF              decimal.Decimal
	TDS             decimal.Decimal
	ProfessionalTax decimal.Decimal
}

// Computation is the derived result: net = gross - total deductions holds
// by construction.
type Computation struct {
	Gross           decimal.Decimal
	TotalDeductions decimal.Decimal
	Net             decimal.Decimal
	NetInWords      string
}

// Slip is everything the renderer needs for one salary slip: the
// descriptive record (possibly blank on a store miss), the submitted
// figures and the computed totals.
type Slip struct {
	Detail      employee.Employee
	Input       CompensationInput
	Computation Computation
}
