package handler

type createCommentRequest struct {
	PostID string `json:"post_id" validate:"required"`
	Body   string `json:"body"    validate:"required,min=1,max=10000"`
}

type updateCommentRequest struct {
	Body string `json:"body" validate:"required,min=1,max=10000"`
}
