package auth

import "context"

type AuthService interface {
	// Login checks credentials and issues an access/refresh token pair
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Refresh exchanges a valid refresh token for a new access token
	Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error)
}
