package repository

import (
	"context"

	"clinicconnect/internal/domain/entity"
)

// BookingSink accepts a completed booking draft and turns it into a
// pending appointment. The in-memory implementation simulates a backend
// by succeeding after a fixed delay.
type BookingSink interface {
	Commit(ctx context.Context, draft *entity.BookingDraft) (*entity.Appointment, error)
}
