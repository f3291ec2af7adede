package transport

import (
	"time"

	"github.com/Skotchmaster/category_service/internal/models"
)

type SignUpRequest struct {
	Username  string `json:"username"   validate:"required,min=2,max=20"`
	Email     string `json:"email"      validate:"required,email"`
	FirstName string `json:"first_name" validate:"required,min=2,max=20"`
	LastName  string `json:"last_name"  validate:"required,min=2,max=20"`
	Password  string `json:"password"   validate:"required,password"`
	Pin       string `json:"pin"`
}

type UserResponse struct {
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		UserID:    u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		FullName:  u.FullName(),
		CreatedAt: u.CreatedAt,
	}
}

type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type CategoryRequest struct {
	Name string `json:"name" validate:"required,category_name"`
}

type ListCategoriesQuery struct {
	Name   string `query:"name"    validate:"omitempty,min=2,max=20"`
	SortBy string `query:"sort_by"`
}
