package dto

import "time"

// ── auth DTOs ──

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
}

// TokenResponse is returned on successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// UserResponse echoes the authenticated admin profile.
type UserResponse struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
