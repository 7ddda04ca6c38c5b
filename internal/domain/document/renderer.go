package document

import (
	"context"

	"github.com/sheepai/hrms-backend-go/internal/domain/jobdesc"
	"github.com/sheepai/hrms-backend-go/internal/domain/payslip"
)

// Renderer assembles letterhead PDFs and writes them to the document
// directory under the naming convention. It is the only component that
// writes generated artifacts to disk.
type Renderer interface {
	RenderSalarySlip(ctx context.Context, slip payslip.Slip) (string, error)
	RenderJobDescription(ctx context.Context, role string, content jobdesc.Content) (string, error)
}
