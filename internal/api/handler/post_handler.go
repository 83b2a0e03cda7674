package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/microblog/platform/internal/core/domain"
	"github.com/microblog/platform/internal/core/ports"
)

type PostHandler struct {
	posts ports.PostService
}

func NewPostHandler(posts ports.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// @Summary  Create a post
// @Tags     posts
// @Router   /api/v1/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.posts.Create(c.Request().Context(), identity, req.Title, req.Body)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, post)
}

// @Summary  Get a post by id
// @Tags     posts
// @Router   /api/v1/posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.posts.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// @Summary  List posts
// @Tags     posts
// @Router   /api/v1/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	limit, offset := listParams(c)
	posts, err := h.posts.List(c.Request().Context(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// @Summary  Update an owned post
// @Tags     posts
// @Router   /api/v1/posts/{id} [patch]
func (h *PostHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.posts.Update(c.Request().Context(), identity, c.Param("id"), domain.PostPatch{
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// @Summary  Delete an owned post
// @Tags     posts
// @Router   /api/v1/posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.posts.Delete(c.Request().Context(), identity, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
