package dto

import "time"

type RegisterRequest struct {
	Email    string `json:"email" example:"candidate@example.com"`
	Password string `json:"password" example:"hunter2hunter2"`
	FullName string `json:"full_name" example:"Jordan Blake"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"candidate@example.com"`
	Password string `json:"password" example:"hunter2hunter2"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiJ9..."`
	TokenType   string `json:"token_type" example:"bearer"`
}

type UserResponse struct {
	ID        string    `json:"id" example:"user_9f8e7d6c"`
	Email     string    `json:"email" example:"candidate@example.com"`
	FullName  string    `json:"full_name,omitempty" example:"Jordan Blake"`
	AvatarURL string    `json:"avatar_url,omitempty" example:"https://example.com/avatar.png"`
	IsActive  bool      `json:"is_active" example:"true"`
	IsAdmin   bool      `json:"is_admin" example:"false"`
	CreatedAt time.Time `json:"created_at"`
}

type UpdateUserRequest struct {
	FullName *string `json:"full_name,omitempty" example:"Jordan Blake"`
	Password *string `json:"password,omitempty" example:"newpassword123"`
}
