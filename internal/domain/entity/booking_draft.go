package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingDraft is the in-progress appointment request assembled during
// the booking flow. It is created when the flow starts, mutated as the
// patient selects a date, slot and type, and consumed on submit.
type BookingDraft struct {
	PatientID uuid.UUID
	DoctorID  uuid.UUID
	Date      time.Time // zero until a date is selected
	Slot      TimeSlot  // empty until a slot is selected
	Type      AppointmentType
	Notes     string
}

// HasDate reports whether a date has been selected.
func (d *BookingDraft) HasDate() bool {
	return !d.Date.IsZero()
}

// IsComplete reports whether the draft can be submitted. Both a date and
// a time slot are required; type defaults to consultation and notes are
// optional, mirroring the booking form's submit gate.
func (d *BookingDraft) IsComplete() bool {
	return d.HasDate() && d.Slot != ""
}
