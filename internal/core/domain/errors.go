package domain

import "errors"

// Sentinel errors shared across services. The HTTP layer maps these to
// status codes in one place (internal/api/error_handler.go).
var (
	// ErrInvalidCredentials covers a bad login (wrong password or unknown
	// email). The message is deliberately generic so a failed login does
	// not reveal whether the email exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserExists is returned on signup with an already-registered email.
	ErrUserExists = errors.New("email already registered")

	// ErrInvalidToken covers every token rejection: bad signature,
	// malformed payload, or expiry. Callers must not distinguish which
	// check failed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrUnauthorized means the bearer header was missing or malformed;
	// no verification was attempted.
	ErrUnauthorized = errors.New("missing bearer token")

	// ErrForbidden means the caller is authenticated but does not own the
	// resource.
	ErrForbidden = errors.New("access forbidden")

	// ErrDependencyUnavailable means a downstream call (delegated token
	// verification) could not complete; the credential may still be valid.
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	ErrUserNotFound    = errors.New("user not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
)
