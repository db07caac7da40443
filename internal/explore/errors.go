package explore

import "errors"

// Domain errors. Each is terminal for the current interaction: the handler
// reports it to the user and produces no partial results.
var (
	// ErrNoMatch means every uploaded query failed to match the reference.
	ErrNoMatch = errors.New("no match: none of the uploaded microbes were found in the reference")

	// ErrNoFile means upload mode was selected but no file was provided.
	ErrNoFile = errors.New("no file provided")

	// ErrSessionNotFound means the session ID is unknown or has expired.
	ErrSessionNotFound = errors.New("session not found")

	// ErrTooManySessions means the session store is at capacity.
	ErrTooManySessions = errors.New("too many sessions: please try again shortly")
)
