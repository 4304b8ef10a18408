package handlers

import (
	"net/http"
	"time"

	"github.com/anonto42/nano-forum/backend/internal/models"
	"github.com/anonto42/nano-forum/backend/internal/services"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

// AuthHandler handles login and logout
type AuthHandler struct {
	forum     services.Service
	jwtSecret string
	tokenTTL  time.Duration
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(forum services.Service, jwtSecret string, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		forum:     forum,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group, auth echo.MiddlewareFunc) {
	g.POST("/login", h.Login)
	g.POST("/logout", h.Logout, auth)
}

// Login resolves the trimmed name to a user, creating it on first use, and
// issues a session token for it
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.forum.Login(c.Request().Context(), req.Name)
	recordMutation("login", err)
	if err != nil {
		return handleServiceError(err)
	}

	token, err := h.generateJWT(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(http.StatusOK, models.LoginResponse{Token: token, User: user})
}

// Logout is stateless: the client drops its token
func (h *AuthHandler) Logout(c echo.Context) error {
	if _, err := actorID(c); err != nil {
		return err
	}
	recordMutation("logout", nil)
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// generateJWT generates a JWT token for a given user
func (h *AuthHandler) generateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := &models.JwtCustomClaims{
		UserID: user.ID,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(h.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtSecret))
}
