package repository

import (
	"context"

	"clinicconnect/internal/domain/entity"
	domainRepo "clinicconnect/internal/domain/repository"
	"clinicconnect/internal/infrastructure/dataset"
)

type departmentRepository struct {
	data *dataset.Dataset
}

func NewDepartmentRepository(data *dataset.Dataset) domainRepo.DepartmentRepository {
	return &departmentRepository{data: data}
}

func (r *departmentRepository) FindAll(ctx context.Context) ([]*entity.Department, error) {
	departments := make([]*entity.Department, len(r.data.Departments))
	copy(departments, r.data.Departments)
	return departments, nil
}

func (r *departmentRepository) FindByName(ctx context.Context, name string) (*entity.Department, error) {
	for _, department := range r.data.Departments {
		if department.Name == name {
			return department, nil
		}
	}
	return nil, nil
}
