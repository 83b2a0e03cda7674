package domain

import "time"

// Post is owned by the post service. AuthorID is the auth-service user id
// taken from the verified token; only the author may update or delete.
type Post struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostPatch carries the mutable fields of a post; nil means "leave as is".
type PostPatch struct {
	Title *string
	Body  *string
}
