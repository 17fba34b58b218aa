package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinicconnect/internal/domain/entity"
	"clinicconnect/internal/infrastructure/dataset"
)

func TestAppointmentRepositoryChronologicalOrder(t *testing.T) {
	data := &dataset.Dataset{}
	repo := NewAppointmentRepository(data)
	ctx := context.Background()

	patientID := uuid.New()
	day := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	late := &entity.Appointment{ID: uuid.New(), PatientID: patientID, Date: day.AddDate(0, 0, 2), Time: "09:00"}
	earlySlot := &entity.Appointment{ID: uuid.New(), PatientID: patientID, Date: day, Time: "14:00"}
	earlierSlot := &entity.Appointment{ID: uuid.New(), PatientID: patientID, Date: day, Time: "09:30"}

	require.NoError(t, repo.Create(ctx, late))
	require.NoError(t, repo.Create(ctx, earlySlot))
	require.NoError(t, repo.Create(ctx, earlierSlot))

	appointments, err := repo.FindByPatientID(ctx, patientID)
	require.NoError(t, err)
	require.Len(t, appointments, 3)
	assert.Equal(t, earlierSlot.ID, appointments[0].ID)
	assert.Equal(t, earlySlot.ID, appointments[1].ID)
	assert.Equal(t, late.ID, appointments[2].ID)
}

func TestAppointmentRepositoryFindByIDMiss(t *testing.T) {
	repo := NewAppointmentRepository(dataset.Seed(time.Now()))

	appointment, err := repo.FindByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, appointment)
}

func TestAppointmentRepositoryScoping(t *testing.T) {
	repo := NewAppointmentRepository(dataset.Seed(time.Now()))
	ctx := context.Background()

	byPatient, err := repo.FindByPatientID(ctx, dataset.PatientJohnID)
	require.NoError(t, err)
	assert.Len(t, byPatient, 2)

	byDoctor, err := repo.FindByDoctorID(ctx, dataset.DoctorJohnsonID)
	require.NoError(t, err)
	require.Len(t, byDoctor, 1)
	assert.Equal(t, dataset.AppointmentOneID, byDoctor[0].ID)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestAppointmentRepositoryUpdateInPlace(t *testing.T) {
	data := dataset.Seed(time.Now())
	repo := NewAppointmentRepository(data)
	ctx := context.Background()

	appointment, err := repo.FindByID(ctx, dataset.AppointmentTwoID)
	require.NoError(t, err)
	require.NotNil(t, appointment)

	appointment.Confirm()
	require.NoError(t, repo.Update(ctx, appointment))

	reloaded, err := repo.FindByID(ctx, dataset.AppointmentTwoID)
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusConfirmed, reloaded.Status)
	assert.Len(t, data.Appointments, 2)
}
