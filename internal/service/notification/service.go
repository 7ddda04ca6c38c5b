package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sheepai/hrms-backend-go/internal/config"
	"github.com/sheepai/hrms-backend-go/internal/domain/document"
	"github.com/sheepai/hrms-backend-go/internal/domain/employee"
	"github.com/sheepai/hrms-backend-go/internal/domain/notification"
)

type NotificationServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	docs         document.Store
	dispatcher   notification.Dispatcher
	company      config.CompanyConfig
}

func NewNotificationService(
	employeeRepo employee.EmployeeRepository,
	docs document.Store,
	dispatcher notification.Dispatcher,
	company config.CompanyConfig,
) notification.NotificationService {
	return &NotificationServiceImpl{
		employeeRepo: employeeRepo,
		docs:         docs,
		dispatcher:   dispatcher,
		company:      company,
	}
}

func (s *NotificationServiceImpl) SendEmail(ctx context.Context, req notification.SendEmailRequest) (notification.SendEmailResponse, error) {
	if err := req.Validate(); err != nil {
		return notification.SendEmailResponse{}, err
	}

	switch req.Type {
	case notification.EmailTypeSalary:
		return s.sendSalarySlip(ctx, req.EmployeeID)
	default:
		return s.sendJobDescription(ctx, req.Role, req.To)
	}
}

func (s *NotificationServiceImpl) sendSalarySlip(ctx context.Context, employeeID string) (notification.SendEmailResponse, error) {
	path, err := s.docs.FindLatest(ctx, document.KindSalarySlip, employeeID)
	if err != nil {
		return notification.SendEmailResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if errors.Is(err, employee.ErrEmployeeNotFound) || (err == nil && emp.Email == "") {
		return notification.SendEmailResponse{}, notification.ErrRecipientNotFound
	}
	if err != nil {
		return notification.SendEmailResponse{}, err
	}

	msg := notification.Message{
		To:             emp.Email,
		Subject:        "Salary Slip",
		Body:           s.salaryBody(emp.Name),
		AttachmentPath: path,
	}
	if err := s.dispatcher.Send(ctx, msg); err != nil {
		return notification.SendEmailResponse{}, err
	}

	slog.Info("Salary slip emailed", "employee_id", employeeID, "to", emp.Email)
	return notification.SendEmailResponse{Recipient: emp.Email, File: path}, nil
}

func (s *NotificationServiceImpl) sendJobDescription(ctx context.Context, role, to string) (notification.SendEmailResponse, error) {
	path, err := s.docs.FindLatest(ctx, document.KindJD, role)
	if err != nil {
		return notification.SendEmailResponse{}, err
	}

	msg := notification.Message{
		To:             to,
		Subject:        fmt.Sprintf("Job Description - %s", role),
		Body:           s.jdBody(role),
		AttachmentPath: path,
	}
	if err := s.dispatcher.Send(ctx, msg); err != nil {
		return notification.SendEmailResponse{}, err
	}

	slog.Info("Job description emailed", "role", role, "to", to)
	return notification.SendEmailResponse{Recipient: to, File: path}, nil
}

func (s *NotificationServiceImpl) salaryBody(name string) string {
	return fmt.Sprintf(`Dear %s,

Please find attached your salary slip.

If you have any questions regarding your compensation,
please contact the HR department.

Regards,
%s
%s`, name, s.company.SenderName, s.company.Name)
}

func (s *NotificationServiceImpl) jdBody(role string) string {
	return fmt.Sprintf(`Dear Recipient,

Please find attached the Job Description for the role of %s.

Regards,
%s
%s`, role, s.company.SenderName, s.company.Name)
}
