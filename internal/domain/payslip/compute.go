package payslip

import "github.com/sheepai/hrms-backend-go/internal/pkg/numwords"

// Compute derives gross, total deductions and net from the submitted
// figures. Pure; no I/O. A negative net is representable and renders as
// a "minus ..." phrase rather than being rejected.
func Compute(in CompensationInput) Computation {
	gross := in.Basic.Add(in.HRA).Add(in.Allowance).Add(in.Bonus)
	deductions := in.PF.Add(in.TDS).Add(in.ProfessionalTax)
	net := gross.Sub(deductions)

	return Computation{
		Gross:           gross,
		TotalDeductions: deductions,
		Net:             net,
		NetInWords:      numwords.Rupees(net),
	}
}
