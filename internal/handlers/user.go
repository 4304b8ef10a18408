package handlers

import (
	"net/http"

	"github.com/anonto42/nano-forum/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// UserHandler handles HTTP requests related to users
type UserHandler struct {
	forum services.Service
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(forum services.Service) *UserHandler {
	return &UserHandler{forum: forum}
}

// RegisterUserRoutes registers user-related routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/users", h.GetUsers)
}

// GetUsers lists every user
func (h *UserHandler) GetUsers(c echo.Context) error {
	users, err := h.forum.Users(c.Request().Context())
	if err != nil {
		return handleServiceError(err)
	}
	return c.JSON(http.StatusOK, users)
}
