package usecase

import (
	"context"
	"errors"
	"time"

	"clinicconnect/internal/converter"
	"clinicconnect/internal/delivery/dto"
	"clinicconnect/internal/domain/entity"
	"clinicconnect/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var ErrUnknownRole = errors.New("user has no dashboard for its role")

// recentNotificationLimit caps the notification feed on the patient
// dashboard.
const recentNotificationLimit = 5

// DashboardUsecase assembles the role-tagged dashboard variant for the
// logged-in user. Role dispatch happens exactly once, here; every
// consumer downstream works with the concrete variant.
type DashboardUsecase interface {
	BuildFor(ctx context.Context, user *entity.User) (dto.Dashboard, error)
}

type dashboardUsecase struct {
	log              *logrus.Logger
	userRepo         repository.UserRepository
	prescriptionRepo repository.PrescriptionRepository
	reviewRepo       repository.ReviewRepository
	notificationRepo repository.NotificationRepository
	appointments     AppointmentUsecase
	admin            AdminUsecase
}

func NewDashboardUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	prescriptionRepo repository.PrescriptionRepository,
	reviewRepo repository.ReviewRepository,
	notificationRepo repository.NotificationRepository,
	appointments AppointmentUsecase,
	admin AdminUsecase,
) DashboardUsecase {
	return &dashboardUsecase{
		log:              log,
		userRepo:         userRepo,
		prescriptionRepo: prescriptionRepo,
		reviewRepo:       reviewRepo,
		notificationRepo: notificationRepo,
		appointments:     appointments,
		admin:            admin,
	}
}

func (u *dashboardUsecase) BuildFor(ctx context.Context, user *entity.User) (dto.Dashboard, error) {
	switch user.Role {
	case entity.RolePatient:
		return u.buildPatient(ctx, user)
	case entity.RoleDoctor:
		return u.buildDoctor(ctx, user)
	case entity.RoleAdmin:
		return u.buildAdmin(ctx, user)
	default:
		return nil, ErrUnknownRole
	}
}

func (u *dashboardUsecase) buildPatient(ctx context.Context, user *entity.User) (*dto.PatientDashboard, error) {
	appointments, err := u.appointments.ListForPatient(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	today := time.Now().Format("2006-01-02")
	upcoming := make([]dto.AppointmentResponse, 0)
	doctorsVisited := make(map[string]struct{})
	for _, appointment := range appointments {
		if appointment.Status == string(entity.AppointmentStatusConfirmed) && appointment.Date >= today {
			upcoming = append(upcoming, appointment)
		}
		if appointment.Status == string(entity.AppointmentStatusCompleted) ||
			appointment.Status == string(entity.AppointmentStatusConfirmed) {
			doctorsVisited[appointment.DoctorName] = struct{}{}
		}
	}

	prescriptions, err := u.prescriptionRepo.FindByPatientID(ctx, user.ID)
	if err != nil {
		u.log.Warnf("Failed to list prescriptions: %+v", err)
		return nil, err
	}
	prescriptionResponses := make([]dto.PrescriptionResponse, 0, len(prescriptions))
	for _, prescription := range prescriptions {
		doctor, err := u.userRepo.FindByID(ctx, prescription.DoctorID)
		if err != nil {
			return nil, err
		}
		prescriptionResponses = append(prescriptionResponses, converter.PrescriptionToResponse(prescription, doctor))
	}

	notifications, err := u.notificationRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		u.log.Warnf("Failed to list notifications: %+v", err)
		return nil, err
	}
	unread := 0
	recent := make([]dto.NotificationResponse, 0, recentNotificationLimit)
	for _, notification := range notifications {
		if !notification.IsRead {
			unread++
		}
		if len(recent) < recentNotificationLimit {
			recent = append(recent, converter.NotificationToResponse(notification))
		}
	}

	return &dto.PatientDashboard{
		User:                 *converter.UserToResponse(user),
		UpcomingAppointments: upcoming,
		Appointments:         appointments,
		Prescriptions:        prescriptionResponses,
		RecentNotifications:  recent,
		DoctorsVisited:       len(doctorsVisited),
		UnreadNotifications:  unread,
	}, nil
}

func (u *dashboardUsecase) buildDoctor(ctx context.Context, user *entity.User) (*dto.DoctorDashboard, error) {
	todays, err := u.appointments.TodayForDoctor(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	all, err := u.appointments.ListForDoctor(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	pending := make([]dto.AppointmentResponse, 0)
	for _, appointment := range all {
		if appointment.Status == string(entity.AppointmentStatusPending) {
			pending = append(pending, appointment)
		}
	}

	var availability []dto.AvailabilityRuleResponse
	if user.DoctorProfile != nil {
		availability = converter.DoctorToResponse(user).Availability
	}

	reviews, err := u.reviewRepo.FindByDoctorID(ctx, user.ID)
	if err != nil {
		u.log.Warnf("Failed to list reviews: %+v", err)
		return nil, err
	}
	reviewResponses := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		reviewer := ""
		if from, err := u.userRepo.FindByID(ctx, review.FromUserID); err == nil && from != nil {
			reviewer = from.FullName()
		}
		reviewResponses = append(reviewResponses, converter.ReviewToResponse(review, reviewer))
	}

	prescriptions, err := u.prescriptionRepo.FindByDoctorID(ctx, user.ID)
	if err != nil {
		u.log.Warnf("Failed to list prescriptions: %+v", err)
		return nil, err
	}

	unread, err := u.notificationRepo.CountUnread(ctx, user.ID)
	if err != nil {
		u.log.Warnf("Failed to count notifications: %+v", err)
		return nil, err
	}

	return &dto.DoctorDashboard{
		User:                 *converter.UserToResponse(user),
		TodayAppointments:    todays,
		PendingAppointments:  pending,
		WeeklyAvailability:   availability,
		RecentReviews:        reviewResponses,
		PrescriptionsWritten: len(prescriptions),
		UnreadNotifications:  unread,
	}, nil
}

func (u *dashboardUsecase) buildAdmin(ctx context.Context, user *entity.User) (*dto.AdminDashboard, error) {
	pending, err := u.admin.PendingDoctors(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := u.admin.Stats(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AdminDashboard{
		User:           *converter.UserToResponse(user),
		PendingDoctors: pending,
		Stats:          *stats,
	}, nil
}
