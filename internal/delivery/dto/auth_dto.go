package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type RegisterRequest struct {
	Email     string `validate:"required,email"`
	Password  string `validate:"required,min=6"`
	FirstName string `validate:"required,min=2"`
	LastName  string `validate:"required,min=2"`
	Phone     string `validate:"omitempty,min=7,max=20"`
	Role      string `validate:"required,oneof=patient doctor"`

	// Doctor-only fields
	Department     string `validate:"required_if=Role doctor"`
	Specialization string `validate:"required_if=Role doctor"`
	LicenseNumber  string `validate:"required_if=Role doctor"`
}

// Response DTOs

type UserResponse struct {
	ID        uuid.UUID
	Email     string
	FullName  string
	Role      string
	Phone     string
	CreatedAt time.Time
}
