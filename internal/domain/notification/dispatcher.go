package notification

import "context"

// Dispatcher delivers one email. The core does not retry; callers that
// need a retry policy impose their own.
type Dispatcher interface {
	Send(ctx context.Context, msg Message) error
}
