package jobdesc

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/sheepai/hrms-backend-go/internal/domain/jobdesc"
	"github.com/sheepai/hrms-backend-go/internal/domain/payslip"
	"github.com/sheepai/hrms-backend-go/internal/repository/docdir"
)

type stubGenerator struct {
	content domain.Content
	err     error
	called  bool
}

func (g *stubGenerator) Generate(ctx context.Context, req domain.GenerateJDRequest) (domain.Content, error) {
	g.called = true
	return g.content, g.err
}

type jdCaptureRenderer struct {
	role     string
	content  domain.Content
	path     string
	rendered bool
}

func (r *jdCaptureRenderer) RenderSalarySlip(ctx context.Context, slip payslip.Slip) (string, error) {
	return "", errors.New("not used")
}

func (r *jdCaptureRenderer) RenderJobDescription(ctx context.Context, role string, content domain.Content) (string, error) {
	r.rendered = true
	r.role = role
	r.content = content
	return r.path, nil
}

func TestJobDescriptionService_GenerateJD(t *testing.T) {
	ctx := context.Background()
	generator := &stubGenerator{content: domain.Content{
		JobSummary:          "Builds backend services.",
		KeyResponsibilities: []string{"Design APIs", "Review code"},
		RequiredSkills:      []string{"Go"},
		Qualifications:      "B.Tech or equivalent",
	}}
	renderer := &jdCaptureRenderer{path: "static/generated_pdfs/JD_Backend_Engineer_20240101120000.pdf"}
	svc := NewJobDescriptionService(generator, renderer, docdir.NewDocumentStore(t.TempDir()))

	resp, err := svc.GenerateJD(ctx, domain.GenerateJDRequest{Role: "Backend Engineer"})

	require.NoError(t, err)
	assert.True(t, generator.called)
	assert.True(t, renderer.rendered)
	assert.Equal(t, "Backend Engineer", renderer.role)
	assert.Equal(t, "Builds backend services.", renderer.content.JobSummary)
	assert.Equal(t, renderer.path, resp.File)
	assert.Equal(t, "Backend Engineer", resp.Role)
}

func TestJobDescriptionService_GenerateJD_GeneratorError(t *testing.T) {
	ctx := context.Background()
	generator := &stubGenerator{err: domain.ErrInvalidContent}
	renderer := &jdCaptureRenderer{path: "x.pdf"}
	svc := NewJobDescriptionService(generator, renderer, docdir.NewDocumentStore(t.TempDir()))

	_, err := svc.GenerateJD(ctx, domain.GenerateJDRequest{Role: "Backend Engineer"})

	assert.ErrorIs(t, err, domain.ErrInvalidContent)
	assert.False(t, renderer.rendered, "a failed generation must not write a document")
}

func TestJobDescriptionService_GenerateJD_ValidationError(t *testing.T) {
	ctx := context.Background()
	generator := &stubGenerator{}
	svc := NewJobDescriptionService(generator, &jdCaptureRenderer{}, docdir.NewDocumentStore(t.TempDir()))

	_, err := svc.GenerateJD(ctx, domain.GenerateJDRequest{Role: "   "})

	assert.Error(t, err)
	assert.False(t, generator.called)
}

func TestJobDescriptionService_ListRoles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	for _, name := range []string{
		"JD_Backend_Engineer_20240101120000.pdf",
		"JD_Backend_Engineer_20240105120000.pdf",
		"JD_Data_Analyst_20240103120000.pdf",
		"SalarySlip_EMP001_20240101120000.pdf",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("%PDF-1.4"), 0o644))
	}
	svc := NewJobDescriptionService(&stubGenerator{}, &jdCaptureRenderer{}, docdir.NewDocumentStore(dir))

	roles, err := svc.ListRoles(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"Backend Engineer", "Data Analyst"}, roles)
}
