package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/microblog/platform/internal/core/ports"
)

type CommentHandler struct {
	comments ports.CommentService
}

func NewCommentHandler(comments ports.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// @Summary  Create a comment on a post
// @Tags     comments
// @Router   /api/v1/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.comments.Create(c.Request().Context(), identity, req.PostID, req.Body)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, comment)
}

// @Summary  Get a comment by id
// @Tags     comments
// @Router   /api/v1/comments/{id} [get]
func (h *CommentHandler) Get(c echo.Context) error {
	comment, err := h.comments.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comment)
}

// @Summary  List comments for a post
// @Tags     comments
// @Router   /api/v1/posts/{post_id}/comments [get]
func (h *CommentHandler) ListByPost(c echo.Context) error {
	limit, offset := listParams(c)
	comments, err := h.comments.ListByPost(c.Request().Context(), c.Param("post_id"), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comments)
}

// @Summary  Update an owned comment
// @Tags     comments
// @Router   /api/v1/comments/{id} [patch]
func (h *CommentHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.comments.Update(c.Request().Context(), identity, c.Param("id"), req.Body)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, comment)
}

// @Summary  Delete an owned comment
// @Tags     comments
// @Router   /api/v1/comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.comments.Delete(c.Request().Context(), identity, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
