package handlers

import (
	"net/http"
	"strconv"

	"github.com/anonto42/nano-forum/backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

// pathID parses a numeric path parameter
func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name)
	}
	return uint(id), nil
}

// optionalQueryID parses a numeric query parameter; an absent one yields nil
func optionalQueryID(c echo.Context, name string) (*uint, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name)
	}
	v := uint(id)
	return &v, nil
}

// actorID returns the authenticated user, or 401 when the route was reached without one
func actorID(c echo.Context) (uint, error) {
	userID, ok := middleware.UserID(c)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}
	return userID, nil
}

// bindAndValidate binds the request body into req and runs the echo validator
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	return nil
}

type successResponse struct {
	Success bool `json:"success"`
}
