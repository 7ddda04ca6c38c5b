package response

import (
	"errors"
	"net/http"

	"github.com/sheepai/hrms-backend-go/internal/domain/document"
	"github.com/sheepai/hrms-backend-go/internal/domain/employee"
	"github.com/sheepai/hrms-backend-go/internal/domain/jobdesc"
	"github.com/sheepai/hrms-backend-go/internal/domain/notification"
	"github.com/sheepai/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		Conflict(w, "Employee ID already exists")

	// Document retrieval errors
	case errors.Is(err, document.ErrDocumentNotFound):
		NotFound(w, "Document not found")

	// Collaborator errors
	case errors.Is(err, jobdesc.ErrInvalidContent):
		BadGateway(w, "Content generator returned malformed content")
	case errors.Is(err, jobdesc.ErrGeneratorNotConfigured):
		InternalServerError(w, "Content generator is not configured")
	case errors.Is(err, notification.ErrDeliveryFailed):
		BadGateway(w, "Email delivery failed")
	case errors.Is(err, notification.ErrDispatcherNotConfigured):
		InternalServerError(w, "Mail dispatcher is not configured")
	case errors.Is(err, notification.ErrRecipientNotFound):
		NotFound(w, "Recipient email not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
