package usecase

import (
	"context"
	"errors"
	"time"

	"clinicconnect/internal/converter"
	"clinicconnect/internal/delivery/dto"
	"clinicconnect/internal/domain/entity"
	"clinicconnect/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrDoctorAlreadyApproved = errors.New("doctor is already approved")

// AdminUsecase backs the admin dashboard: doctor approval queue and
// system-wide statistics.
type AdminUsecase interface {
	PendingDoctors(ctx context.Context) ([]dto.DoctorResponse, error)
	ApproveDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	Stats(ctx context.Context) (*dto.SystemStats, error)
}

type adminUsecase struct {
	log              *logrus.Logger
	doctorRepo       repository.DoctorRepository
	appointmentRepo  repository.AppointmentRepository
	departmentRepo   repository.DepartmentRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
}

func NewAdminUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
	departmentRepo repository.DepartmentRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
) AdminUsecase {
	return &adminUsecase{
		log:              log,
		doctorRepo:       doctorRepo,
		appointmentRepo:  appointmentRepo,
		departmentRepo:   departmentRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

func (u *adminUsecase) PendingDoctors(ctx context.Context) ([]dto.DoctorResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	pending := make([]dto.DoctorResponse, 0)
	for _, doctor := range doctors {
		if !doctor.DoctorProfile.IsApproved {
			pending = append(pending, *converter.DoctorToResponse(doctor))
		}
	}
	return pending, nil
}

func (u *adminUsecase) ApproveDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil || doctor.DoctorProfile == nil {
		return nil, ErrDoctorNotFound
	}
	if doctor.DoctorProfile.IsApproved {
		return nil, ErrDoctorAlreadyApproved
	}

	doctor.DoctorProfile.IsApproved = true
	if err := u.doctorRepo.Update(ctx, doctor); err != nil {
		u.log.Warnf("Failed to approve doctor: %+v", err)
		return nil, err
	}

	notification := &entity.Notification{
		ID:        uuid.New(),
		UserID:    doctor.ID,
		Title:     "Account approved",
		Message:   "Your doctor account has been approved. Patients can now book appointments with you.",
		Type:      entity.NotificationTypeSystem,
		CreatedAt: time.Now(),
	}
	if err := u.notificationRepo.Create(ctx, notification); err != nil {
		u.log.Warnf("Failed to create approval notification: %+v", err)
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *adminUsecase) Stats(ctx context.Context) (*dto.SystemStats, error) {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}
	departments, err := u.departmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list departments: %+v", err)
		return nil, err
	}

	stats := &dto.SystemStats{
		TotalDoctors:      len(doctors),
		TotalAppointments: len(appointments),
		TotalDepartments:  len(departments),
	}
	for _, doctor := range doctors {
		if doctor.DoctorProfile.IsApproved {
			stats.ApprovedDoctors++
		} else {
			stats.PendingDoctors++
		}
	}
	for _, appointment := range appointments {
		if appointment.IsPending() {
			stats.PendingAppointments++
		}
	}

	// Distinct patients that appear on at least one appointment.
	stats.TotalPatients = u.countPatients(ctx, appointments)

	stats.DepartmentLoads = make([]dto.DepartmentLoad, 0, len(departments))
	for _, department := range departments {
		count := 0
		for _, doctor := range doctors {
			if doctor.DoctorProfile.Department == department.Name {
				count++
			}
		}
		share := 0.0
		if len(doctors) > 0 {
			share = float64(count) / float64(len(doctors)) * 100
		}
		stats.DepartmentLoads = append(stats.DepartmentLoads, dto.DepartmentLoad{
			Name:    department.Name,
			Doctors: count,
			Share:   share,
		})
	}

	return stats, nil
}

func (u *adminUsecase) countPatients(ctx context.Context, appointments []*entity.Appointment) int {
	seen := make(map[uuid.UUID]struct{})
	for _, appointment := range appointments {
		if _, ok := seen[appointment.PatientID]; ok {
			continue
		}
		patient, err := u.userRepo.FindByID(ctx, appointment.PatientID)
		if err != nil || patient == nil || !patient.IsPatient() {
			continue
		}
		seen[appointment.PatientID] = struct{}{}
	}
	return len(seen)
}
