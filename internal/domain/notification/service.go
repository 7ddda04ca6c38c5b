package notification

import "context"

type NotificationService interface {
	SendEmail(ctx context.Context, req SendEmailRequest) (SendEmailResponse, error)
}
