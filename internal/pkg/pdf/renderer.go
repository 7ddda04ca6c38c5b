// Package pdf assembles the fixed-section letterhead documents and
// publishes them to the generated-document directory.
package pdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/sheepai/hrms-backend-go/internal/config"
	"github.com/sheepai/hrms-backend-go/internal/domain/document"
	"github.com/sheepai/hrms-backend-go/internal/domain/jobdesc"
	"github.com/sheepai/hrms-backend-go/internal/domain/payslip"
)

// complianceStatements is the fixed declaration block printed on every
// salary slip, verbatim.
var complianceStatements = []string{
	"1. Issued under the Employees' Provident Funds and Miscellaneous Provisions Act, 1952.",
	"2. TDS deducted as per Income Tax Act, 1961.",
	"3. Professional Tax deducted as per applicable State laws.",
	"4. Generated under Payment of Wages Act, 1936.",
	"5. This is a computer-generated document and does not require physical signature.",
}

type rendererImpl struct {
	company config.CompanyConfig
	dir     string
}

// NewRenderer creates the PDF renderer, making sure the document
// directory exists.
func NewRenderer(company config.CompanyConfig, dir string) (document.Renderer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create document directory: %w", err)
	}
	return &rendererImpl{company: company, dir: dir}, nil
}

func (r *rendererImpl) RenderSalarySlip(ctx context.Context, slip payslip.Slip) (string, error) {
	pdf, tr := r.newPage(fmt.Sprintf("Salary Slip - %s", slip.Detail.ID))

	r.sectionTitle(pdf, tr, fmt.Sprintf("Salary Slip - %s", slip.Detail.ID))

	r.detailTable(pdf, tr, [][2]string{
		{"Employee Name", slip.Detail.Name},
		{"Employee ID", slip.Detail.ID},
		{"Designation", slip.Detail.Designation},
		{"Department", slip.Detail.Department},
		{"Date of Joining", slip.Detail.DateOfJoining},
		{"UAN", slip.Detail.UAN},
		{"PF Number", slip.Detail.PFNumber},
		{"PAN", slip.Detail.PAN},
		{"Bank Account", slip.Detail.BankAccountNumber},
	})
	pdf.Ln(8)

	r.amountTable(pdf, tr, "Earnings", [][2]string{
		{"Basic Salary", amount(slip.Input.Basic)},
		{"HRA", amount(slip.Input.HRA)},
		{"Allowance", amount(slip.Input.Allowance)},
		{"Bonus", amount(slip.Input.Bonus)},
		{"Gross Earnings", amount(slip.Computation.Gross)},
	})
	pdf.Ln(6)

	r.amountTable(pdf, tr, "Deductions", [][2]string{
		{"Provident Fund", amount(slip.Input.PF)},
		{"TDS", amount(slip.Input.TDS)},
		{"Professional Tax", amount(slip.Input.ProfessionalTax)},
		{"Total Deductions", amount(slip.Computation.TotalDeductions)},
	})
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("Net Pay: Rs. %s", amount(slip.Computation.Net))), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Net Pay (in words): %s", slip.Computation.NetInWords)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	r.rule(pdf)
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Compliance Declaration", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	for _, statement := range complianceStatements {
		pdf.MultiCell(0, 5, tr(statement), "", "L", false)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, tr(r.company.ContactLine), "", 1, "L", false, 0, "")

	return r.publish(pdf, document.KindSalarySlip, slip.Detail.ID)
}

func (r *rendererImpl) RenderJobDescription(ctx context.Context, role string, content jobdesc.Content) (string, error) {
	pdf, tr := r.newPage(fmt.Sprintf("Job Description - %s", role))

	r.sectionTitle(pdf, tr, fmt.Sprintf("Job Description - %s", role))

	r.textSection(pdf, tr, "Job Summary", content.JobSummary)
	r.bulletSection(pdf, tr, "Key Responsibilities", content.KeyResponsibilities)
	r.bulletSection(pdf, tr, "Required Skills", content.RequiredSkills)
	r.bulletSection(pdf, tr, "Preferred Skills", content.PreferredSkills)
	r.textSection(pdf, tr, "Qualifications", content.Qualifications)
	r.textSection(pdf, tr, "Compensation Note", content.CompensationNote)
	r.textSection(pdf, tr, "Compliance Note", content.ComplianceNote)

	return r.publish(pdf, document.KindJD, role)
}

// newPage opens an A4 page carrying the letterhead header.
func (r *rendererImpl) newPage(title string) (*gofpdf.Fpdf, func(string) string) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, tr(r.company.Name), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 5, tr(r.company.Tagline), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("LLPIN: %s | PAN: %s | TAN: %s", r.company.LLPIN, r.company.PAN, r.company.TAN)), "", 1, "C", false, 0, "")
	pdf.Ln(3)
	r.rule(pdf)
	pdf.Ln(6)

	return pdf, tr
}

func (r *rendererImpl) rule(pdf *gofpdf.Fpdf) {
	left, _, right, _ := pdf.GetMargins()
	width, _ := pdf.GetPageSize()
	y := pdf.GetY()
	pdf.SetDrawColor(120, 120, 120)
	pdf.Line(left, y, width-right, y)
}

func (r *rendererImpl) sectionTitle(pdf *gofpdf.Fpdf, tr func(string) string, title string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")
	pdf.Ln(4)
}

// detailTable prints label/value pairs with a shaded label column.
func (r *rendererImpl) detailTable(pdf *gofpdf.Fpdf, tr func(string) string, rows [][2]string) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetFillColor(245, 245, 245)
	for _, row := range rows {
		pdf.CellFormat(60, 7, tr(row[0]), "1", 0, "L", true, 0, "")
		pdf.CellFormat(95, 7, tr(row[1]), "1", 1, "L", false, 0, "")
	}
}

// amountTable prints a figure table with a shaded header row and
// right-aligned amounts.
func (r *rendererImpl) amountTable(pdf *gofpdf.Fpdf, tr func(string) string, heading string, rows [][2]string) {
	pdf.SetFillColor(225, 225, 225)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(95, 7, tr(heading), "1", 0, "L", true, 0, "")
	pdf.CellFormat(60, 7, "Amount (Rs.)", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.CellFormat(95, 7, tr(row[0]), "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, tr(row[1]), "1", 1, "R", false, 0, "")
	}
}

func (r *rendererImpl) textSection(pdf *gofpdf.Fpdf, tr func(string) string, heading, body string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr(heading), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, tr(body), "", "L", false)
	pdf.Ln(4)
}

func (r *rendererImpl) bulletSection(pdf *gofpdf.Fpdf, tr func(string) string, heading string, items []string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr(heading), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, item := range items {
		pdf.MultiCell(0, 5, tr("- "+item), "", "L", false)
	}
	pdf.Ln(4)
}

// publish writes the document to a temp name and renames it into place,
// so an interrupted render never leaves a half-written pdf under a name
// FindLatest could pick up.
func (r *rendererImpl) publish(pdf *gofpdf.Fpdf, kind document.Kind, subject string) (string, error) {
	name := document.BuildName(kind, subject, time.Now())
	finalPath := filepath.Join(r.dir, name)
	tmpPath := finalPath + "." + uuid.NewString() + ".tmp"

	if err := pdf.OutputFileAndClose(tmpPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to write document: %w", err)
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to publish document: %w", err)
	}
	return finalPath, nil
}

func amount(d decimal.Decimal) string {
	return d.String()
}
