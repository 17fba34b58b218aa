package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatientProfile holds patient-specific data
type PatientProfile struct {
	UserID           uuid.UUID
	DateOfBirth      time.Time
	Address          string
	EmergencyContact string
	MedicalHistory   []string
}
