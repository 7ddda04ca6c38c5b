// Package sendgrid delivers notification emails through the SendGrid v3
// mail API.
package sendgrid

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	sendgridSDK "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/sheepai/hrms-backend-go/internal/config"
	"github.com/sheepai/hrms-backend-go/internal/domain/notification"
)

type dispatcherImpl struct {
	apiKey     string
	senderName string
	senderAddr string
}

// NewDispatcher creates the SendGrid-backed dispatcher. A missing API key
// is not an error here; it fails the first Send instead, per the
// surface-at-invocation rule for collaborator credentials.
func NewDispatcher(cfg config.SendGridConfig, company config.CompanyConfig) notification.Dispatcher {
	return &dispatcherImpl{
		apiKey:     cfg.APIKey,
		senderName: company.SenderName,
		senderAddr: company.SenderEmail,
	}
}

func (d *dispatcherImpl) Send(ctx context.Context, msg notification.Message) error {
	if d.apiKey == "" {
		return notification.ErrDispatcherNotConfigured
	}

	m := mail.NewV3Mail()
	m.SetFrom(mail.NewEmail(d.senderName, d.senderAddr))
	m.Subject = msg.Subject

	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail("", msg.To))
	m.AddPersonalizations(p)
	m.AddContent(mail.NewContent("text/plain", msg.Body))

	if msg.AttachmentPath != "" {
		data, err := os.ReadFile(msg.AttachmentPath)
		if err != nil {
			return fmt.Errorf("failed to read attachment: %w", err)
		}
		a := mail.NewAttachment()
		a.SetContent(base64.StdEncoding.EncodeToString(data))
		a.SetType("application/pdf")
		a.SetFilename(filepath.Base(msg.AttachmentPath))
		a.SetDisposition("attachment")
		m.AddAttachment(a)
	}

	client := sendgridSDK.NewSendClient(d.apiKey)
	resp, err := client.SendWithContext(ctx, m)
	if err != nil {
		slog.Error("Failed to reach SendGrid", "to", msg.To, "subject", msg.Subject, "error", err)
		return fmt.Errorf("%w: %v", notification.ErrDeliveryFailed, err)
	}
	if resp.StatusCode >= 400 {
		slog.Error("SendGrid rejected the send", "to", msg.To, "subject", msg.Subject, "status", resp.StatusCode, "body", resp.Body)
		return fmt.Errorf("%w: status %d: %s", notification.ErrDeliveryFailed, resp.StatusCode, resp.Body)
	}

	slog.Info("Email sent", "to", msg.To, "subject", msg.Subject, "status", resp.StatusCode)
	return nil
}
