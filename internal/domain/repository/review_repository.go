package repository

import (
	"context"

	"clinicconnect/internal/domain/entity"

	"github.com/google/uuid"
)

type ReviewRepository interface {
	FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]*entity.Review, error)
}
