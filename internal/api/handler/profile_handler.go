package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/microblog/platform/internal/core/ports"
)

type ProfileHandler struct {
	profiles ports.ProfileService
}

func NewProfileHandler(profiles ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// @Summary  Create the caller's profile
// @Tags     profiles
// @Router   /api/v1/profiles [post]
func (h *ProfileHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.profiles.Create(c.Request().Context(), identity, req.DisplayName, req.Bio)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, profile)
}

// @Summary  Get a profile by id
// @Tags     profiles
// @Router   /api/v1/profiles/{id} [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	profile, err := h.profiles.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// @Summary  List profiles
// @Tags     profiles
// @Router   /api/v1/profiles [get]
func (h *ProfileHandler) List(c echo.Context) error {
	limit, offset := listParams(c)
	profiles, err := h.profiles.List(c.Request().Context(), limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profiles)
}

// @Summary  Update the caller's profile
// @Tags     profiles
// @Router   /api/v1/profiles/{id} [patch]
func (h *ProfileHandler) Update(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.profiles.Update(c.Request().Context(), identity, c.Param("id"), req.DisplayName, req.Bio)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// @Summary  Delete the caller's profile
// @Tags     profiles
// @Router   /api/v1/profiles/{id} [delete]
func (h *ProfileHandler) Delete(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.profiles.Delete(c.Request().Context(), identity, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
