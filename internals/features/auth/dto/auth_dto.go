package dto

import (
	"time"

	"github.com/google/uuid"

	"esquadrao_backend/internals/features/auth/model"
)

type RegisterRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login com ID token do Google (mesmo fluxo do app antigo)
type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

func ToUserResponse(u *model.UserModel) UserResponse {
	return UserResponse{
		ID:        u.ID,
		UserName:  u.UserName,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
