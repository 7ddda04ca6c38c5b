package jobdesc

import "errors"

var (
	// ErrInvalidContent means the generator replied with something that is
	// not the structured object the contract demands.
	ErrInvalidContent = errors.New("content generator returned malformed content")

	// ErrGeneratorNotConfigured means the generator was invoked without
	// credentials. Surfaced at call time, never at startup.
	ErrGeneratorNotConfigured = errors.New("content generator is not configured")
)
