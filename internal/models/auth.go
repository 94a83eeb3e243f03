package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the signed session payload carried in the cookie or
// bearer token.
type SessionClaims struct {
	UserID string   `json:"userId"`
	Role   UserRole `json:"role"`
	Email  string   `json:"email"`
	Name   string   `json:"name"`
	jwt.RegisteredClaims
}

// Session is the client-facing view of an authenticated session.
type Session struct {
	UserID   string    `json:"userId"`
	Role     UserRole  `json:"role"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	IssuedAt time.Time `json:"issuedAt"`
}

// UserInfo is the public projection of a User.
type UserInfo struct {
	ID    string   `json:"id"`
	Email string   `json:"email"`
	Name  string   `json:"name"`
	Role  UserRole `json:"role"`
}

// LoginRequest is the login action payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued token alongside the user info.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresIn int64     `json:"expiresIn"`
	IssuedAt  time.Time `json:"issuedAt"`
	User      UserInfo  `json:"user"`
}
