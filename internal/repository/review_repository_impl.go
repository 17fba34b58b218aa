package repository

import (
	"context"

	"clinicconnect/internal/domain/entity"
	domainRepo "clinicconnect/internal/domain/repository"
	"clinicconnect/internal/infrastructure/dataset"

	"github.com/google/uuid"
)

type reviewRepository struct {
	data *dataset.Dataset
}

func NewReviewRepository(data *dataset.Dataset) domainRepo.ReviewRepository {
	return &reviewRepository{data: data}
}

func (r *reviewRepository) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]*entity.Review, error) {
	matched := make([]*entity.Review, 0)
	for _, review := range r.data.Reviews {
		if review.ToUserID == doctorID {
			matched = append(matched, review)
		}
	}
	return matched, nil
}
