package dto

import (
	"mime/multipart"

	"github.com/yigit/registrar/internal/app/models"
)

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken           string `json:"accessToken"`
	TokenType             string `json:"tokenType" example:"Bearer"`
	ExpiresIn             int64  `json:"expiresIn"`
	RefreshToken          string `json:"refreshToken,omitempty"`
	RefreshTokenExpiresIn int64  `json:"refreshTokenExpiresIn,omitempty"`
}

// RefreshTokenRequest represents refresh token request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  *models.User  `json:"user"`
}

// UpdateUserRequest changes the signed-in account. Absent fields are kept.
type UpdateUserRequest struct {
	Name     *string `form:"name" json:"name" binding:"omitempty,min=1,max=255"`
	Email    *string `form:"email" json:"email" binding:"omitempty,email,max=255"`
	Phone    *string `form:"phone" json:"phone" binding:"omitempty,max=255"`
	Location *string `form:"location" json:"location" binding:"omitempty,max=255"`
}

// UpdateProfileRequest is UpdateUserRequest plus photo handling
type UpdateProfileRequest struct {
	UpdateUserRequest
	Photo       *string               `form:"photo" json:"photo" binding:"omitempty,max=1000"`
	PhotoFile   *multipart.FileHeader `form:"photo_file" json:"-" swaggerignore:"true"`
	RemovePhoto bool                  `form:"remove_photo" json:"remove_photo"`
}
