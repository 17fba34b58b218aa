package dto

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentResponse struct {
	ID          uuid.UUID
	Date        string // YYYY-MM-DD
	Time        string // HH:MM
	Status      string
	Type        string
	Notes       string
	DoctorName  string
	PatientName string
	CreatedAt   time.Time
}

type PrescriptionResponse struct {
	ID          uuid.UUID
	Diagnosis   string
	DoctorName  string
	Medications int
	Notes       string
	CreatedAt   time.Time
}
