package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/anonto42/nano-forum/backend/internal/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

// userContextKey is where the verified claims are stored on the echo context
const userContextKey = "user"

// JWTAuthMiddleware checks for a valid JWT and extracts user claims.
func JWTAuthMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing Authorization header")
			}

			// Expecting "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization header format")
			}

			claims, err := ParseToken(parts[1], secret)
			if err != nil {
				if errors.Is(err, jwt.ErrSignatureInvalid) {
					return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token signature")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			c.Set(userContextKey, claims)
			return next(c)
		}
	}
}

// ParseToken verifies an HS256 token signed with secret and returns its claims
func ParseToken(tokenString, secret string) (*models.JwtCustomClaims, error) {
	claims := &models.JwtCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.UserID == 0 {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// SetClaims stores claims on the context the way JWTAuthMiddleware does
func SetClaims(c echo.Context, claims *models.JwtCustomClaims) {
	c.Set(userContextKey, claims)
}

// UserID returns the acting user id placed on the context by JWTAuthMiddleware
func UserID(c echo.Context) (uint, bool) {
	claims, ok := c.Get(userContextKey).(*models.JwtCustomClaims)
	if !ok || claims == nil {
		return 0, false
	}
	return claims.UserID, true
}
