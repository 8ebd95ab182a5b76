package domain

import "errors"

// Sentinel errors for the search and user flows. Callers match on these with
// errors.Is; the HTTP layer maps them to status codes.
var (
	// ErrInvalidRequest indicates a malformed search query or request payload.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrAllProvidersFailed indicates every registered provider returned an error.
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrEmailTaken indicates a registration attempt with an email that is
	// already in use.
	ErrEmailTaken = errors.New("email already in use")

	// ErrUserNotFound indicates a lookup for a user that does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials indicates a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSearchNotFound indicates a saved search that does not exist or does
	// not belong to the requesting user.
	ErrSearchNotFound = errors.New("saved search not found")
)
