package repository

import (
	"context"

	"clinicconnect/internal/domain/entity"
)

type DepartmentRepository interface {
	FindAll(ctx context.Context) ([]*entity.Department, error)
	FindByName(ctx context.Context, name string) (*entity.Department, error)
}
