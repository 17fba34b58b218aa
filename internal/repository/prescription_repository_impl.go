package repository

import (
	"context"

	"clinicconnect/internal/domain/entity"
	domainRepo "clinicconnect/internal/domain/repository"
	"clinicconnect/internal/infrastructure/dataset"

	"github.com/google/uuid"
)

type prescriptionRepository struct {
	data *dataset.Dataset
}

func NewPrescriptionRepository(data *dataset.Dataset) domainRepo.PrescriptionRepository {
	return &prescriptionRepository{data: data}
}

func (r *prescriptionRepository) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]*entity.Prescription, error) {
	matched := make([]*entity.Prescription, 0)
	for _, prescription := range r.data.Prescriptions {
		if prescription.PatientID == patientID {
			matched = append(matched, prescription)
		}
	}
	return matched, nil
}

func (r *prescriptionRepository) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]*entity.Prescription, error) {
	matched := make([]*entity.Prescription, 0)
	for _, prescription := range r.data.Prescriptions {
		if prescription.DoctorID == doctorID {
			matched = append(matched, prescription)
		}
	}
	return matched, nil
}
