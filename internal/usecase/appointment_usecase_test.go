package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinicconnect/internal/domain/entity"
	"clinicconnect/internal/infrastructure/dataset"
	"clinicconnect/internal/repository"
)

func newAppointmentFixture(t *testing.T) (AppointmentUsecase, *dataset.Dataset) {
	t.Helper()
	data := dataset.Seed(time.Now())
	uc := NewAppointmentUsecase(
		quietLogger(),
		repository.NewAppointmentRepository(data),
		repository.NewUserRepository(data),
		repository.NewNotificationRepository(data),
	)
	return uc, data
}

func findAppointment(data *dataset.Dataset, id uuid.UUID) *entity.Appointment {
	for _, a := range data.Appointments {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func TestListForPatientResolvesNames(t *testing.T) {
	uc, _ := newAppointmentFixture(t)

	appointments, err := uc.ListForPatient(context.Background(), dataset.PatientJohnID)
	require.NoError(t, err)
	require.Len(t, appointments, 2)

	for _, a := range appointments {
		assert.Equal(t, "John Doe", a.PatientName)
		assert.NotEmpty(t, a.DoctorName)
		assert.NotEmpty(t, a.Date)
	}
}

func TestListForDoctorScopedToDoctor(t *testing.T) {
	uc, _ := newAppointmentFixture(t)

	appointments, err := uc.ListForDoctor(context.Background(), dataset.DoctorJohnsonID)
	require.NoError(t, err)
	require.Len(t, appointments, 1)
	assert.Equal(t, "Dr. Sarah Johnson", appointments[0].DoctorName)

	none, err := uc.ListForDoctor(context.Background(), dataset.DoctorChenID)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestTodayForDoctorSkipsCancelled(t *testing.T) {
	uc, data := newAppointmentFixture(t)
	ctx := context.Background()

	todays, err := uc.TodayForDoctor(ctx, dataset.DoctorJohnsonID)
	require.NoError(t, err)
	require.Len(t, todays, 1)
	assert.Equal(t, dataset.AppointmentOneID, todays[0].ID)

	findAppointment(data, dataset.AppointmentOneID).Cancel()

	todays, err = uc.TodayForDoctor(ctx, dataset.DoctorJohnsonID)
	require.NoError(t, err)
	assert.Empty(t, todays)
}

func TestConfirmPendingAppointment(t *testing.T) {
	uc, data := newAppointmentFixture(t)
	ctx := context.Background()
	notificationsBefore := len(data.Notifications)

	err := uc.Confirm(ctx, dataset.DoctorMartinezID, dataset.AppointmentTwoID)
	require.NoError(t, err)

	appointment := findAppointment(data, dataset.AppointmentTwoID)
	assert.Equal(t, entity.AppointmentStatusConfirmed, appointment.Status)

	// The patient is notified about the confirmation.
	require.Len(t, data.Notifications, notificationsBefore+1)
	latest := data.Notifications[len(data.Notifications)-1]
	assert.Equal(t, dataset.PatientJohnID, latest.UserID)
	assert.Equal(t, entity.NotificationTypeAppointment, latest.Type)

	// Confirming twice is illegal.
	err = uc.Confirm(ctx, dataset.DoctorMartinezID, dataset.AppointmentTwoID)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestConfirmRequiresOwningDoctor(t *testing.T) {
	uc, _ := newAppointmentFixture(t)

	err := uc.Confirm(context.Background(), dataset.DoctorJohnsonID, dataset.AppointmentTwoID)
	assert.ErrorIs(t, err, ErrNotAppointmentOwner)
}

func TestCompleteRequiresConfirmedStatus(t *testing.T) {
	uc, data := newAppointmentFixture(t)
	ctx := context.Background()

	// Pending cannot go straight to completed.
	err := uc.Complete(ctx, dataset.DoctorMartinezID, dataset.AppointmentTwoID)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)

	// Confirmed can.
	require.NoError(t, uc.Complete(ctx, dataset.DoctorJohnsonID, dataset.AppointmentOneID))
	assert.Equal(t, entity.AppointmentStatusCompleted, findAppointment(data, dataset.AppointmentOneID).Status)
}

func TestCancelByEitherParty(t *testing.T) {
	uc, data := newAppointmentFixture(t)
	ctx := context.Background()

	// The patient can cancel their own pending appointment.
	require.NoError(t, uc.Cancel(ctx, dataset.PatientJohnID, dataset.AppointmentTwoID))
	assert.Equal(t, entity.AppointmentStatusCancelled, findAppointment(data, dataset.AppointmentTwoID).Status)

	// A cancelled appointment cannot be cancelled again.
	err := uc.Cancel(ctx, dataset.PatientJohnID, dataset.AppointmentTwoID)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)

	// The doctor can cancel the confirmed one.
	require.NoError(t, uc.Cancel(ctx, dataset.DoctorJohnsonID, dataset.AppointmentOneID))
}

func TestCancelRejectsStrangers(t *testing.T) {
	uc, _ := newAppointmentFixture(t)

	err := uc.Cancel(context.Background(), dataset.DoctorChenID, dataset.AppointmentTwoID)
	assert.ErrorIs(t, err, ErrNotAppointmentOwner)
}

func TestActionsOnUnknownAppointment(t *testing.T) {
	uc, _ := newAppointmentFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, uc.Confirm(ctx, dataset.DoctorJohnsonID, uuid.New()), ErrAppointmentNotFound)
	assert.ErrorIs(t, uc.Cancel(ctx, dataset.PatientJohnID, uuid.New()), ErrAppointmentNotFound)
}
