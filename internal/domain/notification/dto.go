package notification

import "github.com/sheepai/hrms-backend-go/internal/pkg/validator"

// Message is one outgoing email. AttachmentPath is optional; when set it
// points at a generated PDF on local disk.
type Message struct {
	To             string
	Subject        string
	Body           string
	AttachmentPath string
}

// EmailType selects which document kind a send request refers to.
type EmailType string

const (
	EmailTypeSalary EmailType = "salary"
	EmailTypeJD     EmailType = "jd"
)

type SendEmailRequest struct {
	Type       EmailType `json:"type"`
	EmployeeID string    `json:"employee_id,omitempty"`
	Role       string    `json:"role,omitempty"`
	To         string    `json:"to,omitempty"`
}

func (r *SendEmailRequest) Validate() error {
	var errs validator.ValidationErrors

	switch r.Type {
	case EmailTypeSalary:
		if validator.IsEmpty(r.EmployeeID) {
			errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
		}
	case EmailTypeJD:
		if validator.IsEmpty(r.Role) {
			errs = append(errs, validator.ValidationError{Field: "role", Message: "is required"})
		}
		if validator.IsEmpty(r.To) {
			errs = append(errs, validator.ValidationError{Field: "to", Message: "is required"})
		} else if !validator.IsValidEmail(r.To) {
			errs = append(errs, validator.ValidationError{Field: "to", Message: "is not a valid email address"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'salary' or 'jd'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SendEmailResponse struct {
	Recipient string `json:"recipient"`
	File      string `json:"file"`
}
