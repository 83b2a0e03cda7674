package domain

import "time"

// User is an account held by the auth service. PasswordHash is never
// serialized; downstream services only ever see the token subject.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the verified subject extracted from a bearer token.
type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
}
