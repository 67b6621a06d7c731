package dto

import (
	"github.com/taskturkey/taskturkey-api/internal/models"
)

// UserDTO represents a user in API responses. The password hash and internal
// timestamps never leave the server.
type UserDTO struct {
	ID     string          `json:"id"`
	Email  string          `json:"email"`
	Name   string          `json:"name"`
	Avatar *string         `json:"avatar"`
	Role   models.UserRole `json:"role"`
}

// AuthResponse pairs a user with a freshly issued credential.
type AuthResponse struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:     user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Avatar: user.Avatar,
		Role:   user.Role,
	}
}
