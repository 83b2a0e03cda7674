package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/microblog/platform/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware. A
// missing user_id means the middleware did not run on this route — reject
// rather than proceed with an anonymous caller.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	email, _ := c.Get("email").(string)
	return &domain.Identity{UserID: userID, Email: email}, nil
}

// listParams reads limit/offset query parameters, leaving range clamping
// to the service layer.
func listParams(c echo.Context) (limit, offset int64) {
	limit, _ = strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	offset, _ = strconv.ParseInt(c.QueryParam("offset"), 10, 64)
	return limit, offset
}
