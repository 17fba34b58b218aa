package repository

import (
	"context"
	"sort"

	"clinicconnect/internal/domain/entity"
	domainRepo "clinicconnect/internal/domain/repository"
	"clinicconnect/internal/infrastructure/dataset"

	"github.com/google/uuid"
)

type appointmentRepository struct {
	data *dataset.Dataset
}

func NewAppointmentRepository(data *dataset.Dataset) domainRepo.AppointmentRepository {
	return &appointmentRepository{data: data}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	r.data.Appointments = append(r.data.Appointments, appointment)
	return nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	for _, appointment := range r.data.Appointments {
		if appointment.ID == id {
			return appointment, nil
		}
	}
	return nil, nil
}

func (r *appointmentRepository) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]*entity.Appointment, error) {
	return r.filter(func(a *entity.Appointment) bool { return a.PatientID == patientID }), nil
}

func (r *appointmentRepository) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]*entity.Appointment, error) {
	return r.filter(func(a *entity.Appointment) bool { return a.DoctorID == doctorID }), nil
}

func (r *appointmentRepository) FindAll(ctx context.Context) ([]*entity.Appointment, error) {
	return r.filter(func(*entity.Appointment) bool { return true }), nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	for i, existing := range r.data.Appointments {
		if existing.ID == appointment.ID {
			r.data.Appointments[i] = appointment
			return nil
		}
	}
	r.data.Appointments = append(r.data.Appointments, appointment)
	return nil
}

func (r *appointmentRepository) filter(keep func(*entity.Appointment) bool) []*entity.Appointment {
	matched := make([]*entity.Appointment, 0)
	for _, appointment := range r.data.Appointments {
		if keep(appointment) {
			matched = append(matched, appointment)
		}
	}
	// Chronological, earliest first; stable for same-day appointments.
	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].Date.Equal(matched[j].Date) {
			return matched[i].Date.Before(matched[j].Date)
		}
		return matched[i].Time < matched[j].Time
	})
	return matched
}
