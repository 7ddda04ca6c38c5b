package pdf

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheepai/hrms-backend-go/internal/config"
	"github.com/sheepai/hrms-backend-go/internal/domain/employee"
	"github.com/sheepai/hrms-backend-go/internal/domain/jobdesc"
	"github.com/sheepai/hrms-backend-go/internal/domain/payslip"
)

func testCompany() config.CompanyConfig {
	return config.CompanyConfig{
		Name:        "SHEEP.AI ADVISORY LLP",
		Tagline:     "Incorporated under LLP Act, 2008",
		LLPIN:       "ACQ-1759",
		PAN:         "AFRFS4064A",
		TAN:         "LKNS29836C",
		ContactLine: "Email: hr@sheepai.info | Website: www.sheepai.info",
	}
}

func TestRenderSalarySlip(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRenderer(testCompany(), dir)
	require.NoError(t, err)

	input := payslip.CompensationInput{
		Basic:           decimal.NewFromInt(50000),
		HRA:             decimal.NewFromInt(20000),
		Allowance:       decimal.NewFromInt(5000),
		PF:              decimal.NewFromInt(1800),
		TDS:             decimal.NewFromInt(2000),
		ProfessionalTax: decimal.NewFromInt(200),
	}
	slip := payslip.Slip{
		Detail:      employee.Employee{ID: "E100", Name: "Asha", Designation: "Engineer"},
		Input:       input,
		Computation: payslip.Compute(input),
	}

	path, err := r.RenderSalarySlip(context.Background(), slip)
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	assert.Regexp(t, regexp.MustCompile(`^SalarySlip_E100_\d{14}\.pdf$`), filepath.Base(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRenderJobDescription(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRenderer(testCompany(), dir)
	require.NoError(t, err)

	content := jobdesc.Content{
		JobSummary:          "Own the data platform.",
		KeyResponsibilities: []string{"Build pipelines", "Review designs"},
		RequiredSkills:      []string{"Go", "SQL"},
		PreferredSkills:     []string{"Airflow"},
		Qualifications:      "B.Tech or equivalent experience.",
		CompensationNote:    "Competitive, as per industry standards.",
		ComplianceNote:      "Equal-opportunity employer.",
	}

	path, err := r.RenderJobDescription(context.Background(), "Data Engineer", content)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^JD_Data_Engineer_\d{14}\.pdf$`), filepath.Base(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestNewRendererCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "pdfs")

	_, err := NewRenderer(testCompany(), dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
