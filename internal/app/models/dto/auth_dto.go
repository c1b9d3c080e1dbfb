package dto

import "github.com/edukta/backend/internal/app/models"

// SignInRequest represents sign-in credentials
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents a self-service registration payload
type RegisterRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Name     string  `json:"name" binding:"required"`
	Surname  string  `json:"surname" binding:"required"`
	Phone    *string `json:"phone,omitempty"`
	Degree   *string `json:"degree,omitempty"`
}

// AdminRegisterRequest lets an admin create a user with an explicit role.
type AdminRegisterRequest struct {
	RegisterRequest
	RoleID models.Role `json:"roleId"`
}

// RefreshTokenRequest represents a token refresh payload
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// SignOutRequest optionally carries the refresh token to revoke.
type SignOutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// AuthResponse carries the authenticated user and its token pair.
type AuthResponse struct {
	User         UserResponse `json:"user"`
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken,omitempty"`
	ExpiresIn    int64        `json:"expiresIn"`
}
