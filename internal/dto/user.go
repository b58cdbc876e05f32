package dto

import (
	"time"

	"github.com/pipelinekit/asset-tracking-api/internal/models"
)

// UserDTO represents a user in API responses. The password hash is never
// part of it.
type UserDTO struct {
	ID        string     `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	AvatarURL string     `json:"avatarURL"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// ToUserDTO converts a user to its public representation
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		AvatarURL: user.AvatarURL,
	}
}

// ToUserDetailDTO converts a user to its public representation including
// the creation timestamp
func ToUserDetailDTO(user models.User) UserDTO {
	u := ToUserDTO(user)
	createdAt := user.CreatedAt
	u.CreatedAt = &createdAt
	return u
}

// ToUserDTOs converts a slice of users
func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, user := range users {
		dtos[i] = ToUserDTO(user)
	}
	return dtos
}
