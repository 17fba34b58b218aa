package repository

import (
	"context"

	"clinicconnect/internal/domain/entity"

	"github.com/google/uuid"
)

// DoctorRepository reads and updates users carrying a doctor profile.
type DoctorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, doctor *entity.User) error
}
