package domain

import "time"

// Profile is the public-facing record the user service keeps for an auth
// account. AuthUserID is unique: one profile per account.
type Profile struct {
	ID          string    `json:"id"`
	AuthUserID  string    `json:"auth_user_id"`
	DisplayName string    `json:"display_name"`
	Bio         string    `json:"bio,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
