package notification

import "errors"

var (
	// ErrDispatcherNotConfigured means the transport was invoked without
	// credentials. Surfaced at call time, never at startup.
	ErrDispatcherNotConfigured = errors.New("mail dispatcher is not configured")

	// ErrDeliveryFailed means the transport reported an error status.
	ErrDeliveryFailed = errors.New("mail delivery failed")

	// ErrRecipientNotFound means no email address is on record for the
	// requested employee.
	ErrRecipientNotFound = errors.New("recipient email not found")
)
