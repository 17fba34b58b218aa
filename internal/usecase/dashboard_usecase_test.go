package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinicconnect/internal/delivery/dto"
	"clinicconnect/internal/domain/entity"
	"clinicconnect/internal/infrastructure/dataset"
	"clinicconnect/internal/repository"
)

func newDashboardFixture(t *testing.T) (DashboardUsecase, *dataset.Dataset) {
	t.Helper()
	data := dataset.Seed(time.Now())
	log := quietLogger()
	userRepo := repository.NewUserRepository(data)
	appointmentRepo := repository.NewAppointmentRepository(data)
	notificationRepo := repository.NewNotificationRepository(data)
	appointments := NewAppointmentUsecase(log, appointmentRepo, userRepo, notificationRepo)
	admin := NewAdminUsecase(
		log,
		repository.NewDoctorRepository(data),
		appointmentRepo,
		repository.NewDepartmentRepository(data),
		userRepo,
		notificationRepo,
	)
	uc := NewDashboardUsecase(
		log,
		userRepo,
		repository.NewPrescriptionRepository(data),
		repository.NewReviewRepository(data),
		notificationRepo,
		appointments,
		admin,
	)
	return uc, data
}

func seededUser(data *dataset.Dataset, id uuid.UUID) *entity.User {
	for _, u := range data.Users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func TestBuildForPatient(t *testing.T) {
	uc, data := newDashboardFixture(t)

	dashboard, err := uc.BuildFor(context.Background(), seededUser(data, dataset.PatientJohnID))
	require.NoError(t, err)

	patient, ok := dashboard.(*dto.PatientDashboard)
	require.True(t, ok)
	assert.Equal(t, "patient", patient.DashboardRole())
	assert.Equal(t, "John Doe", patient.User.FullName)

	// Today's confirmed visit with Dr. Johnson counts as upcoming; the
	// pending one with Dr. Martinez does not.
	require.Len(t, patient.UpcomingAppointments, 1)
	assert.Equal(t, "Dr. Sarah Johnson", patient.UpcomingAppointments[0].DoctorName)
	assert.Len(t, patient.Appointments, 2)
	assert.Equal(t, 1, patient.DoctorsVisited)
	require.Len(t, patient.Prescriptions, 1)
	assert.Equal(t, "Hypertension management", patient.Prescriptions[0].Diagnosis)
	require.Len(t, patient.RecentNotifications, 1)
	assert.False(t, patient.RecentNotifications[0].IsRead)
	assert.Equal(t, 1, patient.UnreadNotifications)
}

func TestBuildForDoctor(t *testing.T) {
	uc, data := newDashboardFixture(t)

	dashboard, err := uc.BuildFor(context.Background(), seededUser(data, dataset.DoctorJohnsonID))
	require.NoError(t, err)

	doctor, ok := dashboard.(*dto.DoctorDashboard)
	require.True(t, ok)
	assert.Equal(t, "doctor", doctor.DashboardRole())

	require.Len(t, doctor.TodayAppointments, 1)
	assert.Equal(t, "10:00", doctor.TodayAppointments[0].Time)
	assert.Empty(t, doctor.PendingAppointments)
	assert.Len(t, doctor.WeeklyAvailability, 5)

	require.Len(t, doctor.RecentReviews, 1)
	assert.Equal(t, 5, doctor.RecentReviews[0].Rating)
	assert.Equal(t, "John Doe", doctor.RecentReviews[0].Reviewer)
	assert.Equal(t, 1, doctor.PrescriptionsWritten)
}

func TestBuildForAdmin(t *testing.T) {
	uc, data := newDashboardFixture(t)

	dashboard, err := uc.BuildFor(context.Background(), seededUser(data, dataset.AdminID))
	require.NoError(t, err)

	admin, ok := dashboard.(*dto.AdminDashboard)
	require.True(t, ok)
	assert.Equal(t, "admin", admin.DashboardRole())
	require.Len(t, admin.PendingDoctors, 1)
	assert.Equal(t, "Dr. James Wilson", admin.PendingDoctors[0].FullName)
	assert.Equal(t, 4, admin.Stats.TotalDoctors)
}

func TestBuildForUnknownRole(t *testing.T) {
	uc, _ := newDashboardFixture(t)

	_, err := uc.BuildFor(context.Background(), &entity.User{Role: entity.Role("ghost")})
	assert.ErrorIs(t, err, ErrUnknownRole)
}
