package entity

import (
	"time"

	"github.com/google/uuid"
)

// Medication is a single line item on a prescription
type Medication struct {
	Name         string
	Dosage       string
	Frequency    string
	Duration     string
	Instructions string
}

// Prescription is issued by a doctor against a completed appointment
type Prescription struct {
	ID            uuid.UUID
	AppointmentID uuid.UUID
	DoctorID      uuid.UUID
	PatientID     uuid.UUID
	Diagnosis     string
	Medications   []Medication
	Notes         string
	CreatedAt     time.Time
}
