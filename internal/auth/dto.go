package auth

import (
	"github.com/angelmondragon/storefront-backend/internal/users"
)

// SignupRequest is the validated signup payload.
type SignupRequest struct {
	Name     string `json:"name" validate:"required,notblank,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest captures the user credentials sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResult carries both tokens. Only AccessToken and User are serialized;
// the refresh token travels in a cookie.
type LoginResult struct {
	AccessToken  string         `json:"accessToken"`
	RefreshToken string         `json:"-"`
	User         *users.UserDTO `json:"user"`
}

// RefreshResult is returned by the refresh endpoint. RefreshToken replaces
// the presented one and travels in a cookie.
type RefreshResult struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"-"`
}

// SignupResult is returned by the signup endpoint.
type SignupResult struct {
	Message string         `json:"message"`
	User    *users.UserDTO `json:"user"`
}

// ProfileResult is returned by the profile endpoint.
type ProfileResult struct {
	User *users.UserDTO `json:"user"`
}
