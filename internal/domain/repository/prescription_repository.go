package repository

import (
	"context"

	"clinicconnect/internal/domain/entity"

	"github.com/google/uuid"
)

type PrescriptionRepository interface {
	FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]*entity.Prescription, error)
	FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]*entity.Prescription, error)
}
