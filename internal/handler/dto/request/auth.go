package request

import (
	"agora-server/internal/domain/user"
)

type SignUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required,max=100"`
	Role     string `json:"role" binding:"omitempty,oneof=USER BUSINESS"`
}

func (r *SignUpRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Password)
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Password)
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
