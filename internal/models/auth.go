package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest carries sign-in credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the issued access token and the signed-in account.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresIn   int64     `json:"expires_in"`
	IssuedAt    time.Time `json:"issued_at"`
	User        User      `json:"user"`
}

// ChangePasswordRequest carries the password-change dialog payload. The
// confirmation must match the new password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

// UpdateProfileRequest replaces the editable profile fields. The profile form
// always submits the full field set, so this is a whole-record update.
type UpdateProfileRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Bio             string `json:"bio"`
	Address         string `json:"address"`
	MusicPreference string `json:"music_preference"`
	MusicGoals      string `json:"music_goals"`
	AvatarURL       string `json:"avatar_url"`
}

// JWTClaims are the custom claims embedded in access tokens.
type JWTClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
