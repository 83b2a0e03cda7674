package handler

type createPostRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
	Body  string `json:"body"  validate:"required,min=1,max=100000"`
}

type updatePostRequest struct {
	Title *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Body  *string `json:"body,omitempty"  validate:"omitempty,min=1,max=100000"`
}
