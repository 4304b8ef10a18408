package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User is created on first login with a given trimmed name and never mutated afterwards
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex"` // login treats the name as a natural key
	CreatedAt time.Time `json:"created_at"`
}

type LoginRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// LoginResponse carries the session token used to identify the actor on mutations
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}
