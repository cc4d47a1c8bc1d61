package models

import "github.com/golang-jwt/jwt/v5"

// UserRole represents the roles issued by the upstream auth service.
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleTeacher UserRole = "teacher"
	RoleStudent UserRole = "student"
)

// JWTClaims mirrors the access token payload minted by the upstream API.
// The gateway validates tokens with the shared secret but never issues them.
type JWTClaims struct {
	UserID string   `json:"user_id"`
	Email  string   `json:"email"`
	Role   UserRole `json:"role"`
	jwt.RegisteredClaims
}
