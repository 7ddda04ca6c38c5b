package notification

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheepai/hrms-backend-go/internal/config"
	"github.com/sheepai/hrms-backend-go/internal/domain/document"
	"github.com/sheepai/hrms-backend-go/internal/domain/employee"
	domain "github.com/sheepai/hrms-backend-go/internal/domain/notification"
	"github.com/sheepai/hrms-backend-go/internal/repository/docdir"
	"github.com/sheepai/hrms-backend-go/internal/repository/spreadsheet"
)

type captureDispatcher struct {
	msg  domain.Message
	err  error
	sent bool
}

func (d *captureDispatcher) Send(ctx context.Context, msg domain.Message) error {
	d.sent = true
	d.msg = msg
	return d.err
}

var testCompany = config.CompanyConfig{
	Name:       "SHEEP.AI ADVISORY LLP",
	SenderName: "HR Team",
}

func writeTestPDF(t *testing.T, dir, name string, mtime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	return path
}

func TestNotificationService_SendEmail_SalarySlip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	repo := spreadsheet.NewEmployeeRepository(filepath.Join(t.TempDir(), "employee_master.xlsx"))
	_, err := repo.Create(ctx, employee.Employee{ID: "EMP001", Name: "Asha Verma", Email: "asha@example.com"})
	require.NoError(t, err)

	base := time.Now().Add(-time.Hour)
	writeTestPDF(t, dir, "SalarySlip_EMP001_20240101120000.pdf", base)
	latest := writeTestPDF(t, dir, "SalarySlip_EMP001_20240201120000.pdf", base.Add(time.Minute))

	dispatcher := &captureDispatcher{}
	svc := NewNotificationService(repo, docdir.NewDocumentStore(dir), dispatcher, testCompany)

	resp, err := svc.SendEmail(ctx, domain.SendEmailRequest{Type: domain.EmailTypeSalary, EmployeeID: "EMP001"})

	require.NoError(t, err)
	assert.True(t, dispatcher.sent)
	assert.Equal(t, "asha@example.com", dispatcher.msg.To)
	assert.Equal(t, "Salary Slip", dispatcher.msg.Subject)
	assert.Contains(t, dispatcher.msg.Body, "Asha Verma")
	assert.Contains(t, dispatcher.msg.Body, "HR Team")
	assert.Equal(t, latest, dispatcher.msg.AttachmentPath)
	assert.Equal(t, "asha@example.com", resp.Recipient)
	assert.Equal(t, latest, resp.File)
}

func TestNotificationService_SendEmail_SalarySlip_NoDocument(t *testing.T) {
	ctx := context.Background()
	repo := spreadsheet.NewEmployeeRepository(filepath.Join(t.TempDir(), "employee_master.xlsx"))
	dispatcher := &captureDispatcher{}
	svc := NewNotificationService(repo, docdir.NewDocumentStore(t.TempDir()), dispatcher, testCompany)

	_, err := svc.SendEmail(ctx, domain.SendEmailRequest{Type: domain.EmailTypeSalary, EmployeeID: "EMP001"})

	assert.ErrorIs(t, err, document.ErrDocumentNotFound)
	assert.False(t, dispatcher.sent)
}

func TestNotificationService_SendEmail_SalarySlip_NoRecipient(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writeTestPDF(t, dir, "SalarySlip_EMP001_20240101120000.pdf", time.Now())

	repo := spreadsheet.NewEmployeeRepository(filepath.Join(t.TempDir(), "employee_master.xlsx"))
	dispatcher := &captureDispatcher{}
	svc := NewNotificationService(repo, docdir.NewDocumentStore(dir), dispatcher, testCompany)

	_, err := svc.SendEmail(ctx, domain.SendEmailRequest{Type: domain.EmailTypeSalary, EmployeeID: "EMP001"})

	assert.ErrorIs(t, err, domain.ErrRecipientNotFound)
	assert.False(t, dispatcher.sent)
}

func TestNotificationService_SendEmail_JobDescription(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	latest := writeTestPDF(t, dir, "JD_Backend_Engineer_20240101120000.pdf", time.Now())

	repo := spreadsheet.NewEmployeeRepository(filepath.Join(t.TempDir(), "employee_master.xlsx"))
	dispatcher := &captureDispatcher{}
	svc := NewNotificationService(repo, docdir.NewDocumentStore(dir), dispatcher, testCompany)

	resp, err := svc.SendEmail(ctx, domain.SendEmailRequest{
		Type: domain.EmailTypeJD,
		Role: "Backend Engineer",
		To:   "candidate@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "candidate@example.com", dispatcher.msg.To)
	assert.Equal(t, "Job Description - Backend Engineer", dispatcher.msg.Subject)
	assert.Equal(t, latest, dispatcher.msg.AttachmentPath)
	assert.Equal(t, "candidate@example.com", resp.Recipient)
}

func TestNotificationService_SendEmail_DispatcherError(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	writeTestPDF(t, dir, "JD_Backend_Engineer_20240101120000.pdf", time.Now())

	repo := spreadsheet.NewEmployeeRepository(filepath.Join(t.TempDir(), "employee_master.xlsx"))
	dispatcher := &captureDispatcher{err: domain.ErrDeliveryFailed}
	svc := NewNotificationService(repo, docdir.NewDocumentStore(dir), dispatcher, testCompany)

	_, err := svc.SendEmail(ctx, domain.SendEmailRequest{
		Type: domain.EmailTypeJD,
		Role: "Backend Engineer",
		To:   "candidate@example.com",
	})

	assert.ErrorIs(t, err, domain.ErrDeliveryFailed)
}

func TestNotificationService_SendEmail_ValidationError(t *testing.T) {
	ctx := context.Background()
	repo := spreadsheet.NewEmployeeRepository(filepath.Join(t.TempDir(), "employee_master.xlsx"))
	dispatcher := &captureDispatcher{}
	svc := NewNotificationService(repo, docdir.NewDocumentStore(t.TempDir()), dispatcher, testCompany)

	_, err := svc.SendEmail(ctx, domain.SendEmailRequest{Type: "fax"})

	assert.Error(t, err)
	assert.False(t, dispatcher.sent)
}
