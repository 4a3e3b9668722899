package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kotconnect/internal/auth"
	"kotconnect/internal/errors"
	"kotconnect/internal/model"
	"kotconnect/internal/service"
)

// currentUser resolves the authenticated principal to its user record. The
// token was already validated by the route middleware; a token whose subject
// no longer exists still fails with 401, since token validity does not
// guarantee the referenced user survives.
func currentUser(c echo.Context, users service.UserService) (*model.User, error) {
	claims, ok := c.Get("user").(*auth.Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "missing or invalid token",
			Code:  "UNAUTHORIZED",
		})
	}

	user, err := users.GetByUsername(c.Request().Context(), claims.Username)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "user no longer exists",
			Code:  "UNAUTHORIZED",
		})
	}

	return user, nil
}
