package repository

import (
	"context"
	"errors"

	"clinicconnect/internal/domain/entity"
	domainRepo "clinicconnect/internal/domain/repository"
	"clinicconnect/internal/infrastructure/dataset"

	"github.com/google/uuid"
)

var errNotADoctor = errors.New("user does not carry a doctor profile")

type doctorRepository struct {
	data *dataset.Dataset
}

func NewDoctorRepository(data *dataset.Dataset) domainRepo.DoctorRepository {
	return &doctorRepository{data: data}
}

func (r *doctorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	for _, user := range r.data.Users {
		if user.ID == id && user.DoctorProfile != nil {
			return user, nil
		}
	}
	return nil, nil
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	doctors := make([]*entity.User, 0)
	for _, user := range r.data.Users {
		if user.DoctorProfile != nil {
			doctors = append(doctors, user)
		}
	}
	return doctors, nil
}

func (r *doctorRepository) Update(ctx context.Context, doctor *entity.User) error {
	if doctor.DoctorProfile == nil {
		return errNotADoctor
	}
	for i, user := range r.data.Users {
		if user.ID == doctor.ID {
			r.data.Users[i] = doctor
			return nil
		}
	}
	r.data.Users = append(r.data.Users, doctor)
	return nil
}
