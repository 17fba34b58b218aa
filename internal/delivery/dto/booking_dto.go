package dto

import "github.com/google/uuid"

// BookingDetailsRequest carries the type and notes fields of the booking form.
type BookingDetailsRequest struct {
	Type  string `validate:"required,oneof=consultation follow-up check-up"`
	Notes string `validate:"omitempty,max=500"`
}

// BookingConfirmation is shown after a successful submit.
type BookingConfirmation struct {
	AppointmentID uuid.UUID
	DoctorName    string
	Date          string // YYYY-MM-DD
	Time          string // HH:MM
	Type          string
	Status        string
}
