package converter

import (
	"clinicconnect/internal/delivery/dto"
	"clinicconnect/internal/domain/entity"
)

// UserToResponse converts a User entity to its view model
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName(),
		Role:      string(user.Role),
		Phone:     user.Phone,
		CreatedAt: user.CreatedAt,
	}
}
