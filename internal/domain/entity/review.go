package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is patient feedback for a doctor, tied to an appointment
type Review struct {
	ID            uuid.UUID
	FromUserID    uuid.UUID
	ToUserID      uuid.UUID
	AppointmentID uuid.UUID
	Rating        int
	Comment       string
	CreatedAt     time.Time
}
