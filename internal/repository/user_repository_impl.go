package repository

import (
	"context"

	"clinicconnect/internal/domain/entity"
	domainRepo "clinicconnect/internal/domain/repository"
	"clinicconnect/internal/infrastructure/dataset"

	"github.com/google/uuid"
)

type userRepository struct {
	data *dataset.Dataset
}

func NewUserRepository(data *dataset.Dataset) domainRepo.UserRepository {
	return &userRepository{data: data}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	r.data.Users = append(r.data.Users, user)
	return nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range r.data.Users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, user := range r.data.Users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, nil
}
