package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid or malformed token")
	ErrTokenExpired        = errors.New("token has expired")
	ErrRefreshTokenMissing = errors.New("refresh token cookie is missing")
	ErrUserNotFound        = errors.New("user not found")
)
