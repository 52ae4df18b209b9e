package dto

import "jobportal_backend/internal/models"

type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	Role        models.UserRole `json:"role"`
	TokenType   string          `json:"token_type"`
}

type RegisterRequest struct {
	Name     string `json:"name" form:"name" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=8"`
	Role     string `json:"role" form:"role" validate:"required,is-user-role"`
	Bio      string `json:"bio" form:"bio"`
	Skills   string `json:"skills" form:"skills"`
}
