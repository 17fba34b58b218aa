package usecase

import (
	"context"
	"strings"

	"clinicconnect/internal/converter"
	"clinicconnect/internal/delivery/dto"
	"clinicconnect/internal/domain/entity"
	"clinicconnect/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// DoctorDirectoryUsecase backs the "find doctors" screen: approved
// doctors filtered by free text, department and specialization.
type DoctorDirectoryUsecase interface {
	Search(ctx context.Context, filter *entity.DoctorFilter) ([]dto.DoctorResponse, error)
	Departments(ctx context.Context) ([]dto.DepartmentResponse, error)
}

type doctorDirectoryUsecase struct {
	log            *logrus.Logger
	doctorRepo     repository.DoctorRepository
	departmentRepo repository.DepartmentRepository
}

func NewDoctorDirectoryUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	departmentRepo repository.DepartmentRepository,
) DoctorDirectoryUsecase {
	return &doctorDirectoryUsecase{
		log:            log,
		doctorRepo:     doctorRepo,
		departmentRepo: departmentRepo,
	}
}

func (u *doctorDirectoryUsecase) Search(ctx context.Context, filter *entity.DoctorFilter) ([]dto.DoctorResponse, error) {
	if filter == nil {
		filter = &entity.DoctorFilter{}
	}

	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	results := make([]dto.DoctorResponse, 0, len(doctors))
	for _, doctor := range doctors {
		profile := doctor.DoctorProfile
		if !profile.IsApproved {
			continue
		}
		if !matchesQuery(doctor, filter.Query) {
			continue
		}
		if filter.Department != "" && profile.Department != filter.Department {
			continue
		}
		if filter.Specialization != "" && !profile.HasSpecialization(filter.Specialization) {
			continue
		}
		results = append(results, *converter.DoctorToResponse(doctor))
	}
	return results, nil
}

func (u *doctorDirectoryUsecase) Departments(ctx context.Context) ([]dto.DepartmentResponse, error) {
	departments, err := u.departmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list departments: %+v", err)
		return nil, err
	}

	responses := make([]dto.DepartmentResponse, len(departments))
	for i, department := range departments {
		responses[i] = *converter.DepartmentToResponse(department)
	}
	return responses, nil
}

// matchesQuery is a case-insensitive substring match on the doctor's
// name, specializations and department.
func matchesQuery(doctor *entity.User, query string) bool {
	if query == "" {
		return true
	}
	needle := strings.ToLower(query)
	if strings.Contains(strings.ToLower(doctor.FullName()), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(doctor.DoctorProfile.Department), needle) {
		return true
	}
	for _, specialization := range doctor.DoctorProfile.Specializations {
		if strings.Contains(strings.ToLower(specialization), needle) {
			return true
		}
	}
	return false
}
