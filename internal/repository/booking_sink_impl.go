package repository

import (
	"context"
	"fmt"
	"time"

	"clinicconnect/internal/domain/entity"
	domainRepo "clinicconnect/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// bookingSink records a completed draft as a pending appointment after a
// fixed simulated processing delay. No external system is involved.
type bookingSink struct {
	log              *logrus.Logger
	appointmentRepo  domainRepo.AppointmentRepository
	notificationRepo domainRepo.NotificationRepository
	delay            time.Duration
}

func NewBookingSink(
	log *logrus.Logger,
	appointmentRepo domainRepo.AppointmentRepository,
	notificationRepo domainRepo.NotificationRepository,
	delay time.Duration,
) domainRepo.BookingSink {
	return &bookingSink{
		log:              log,
		appointmentRepo:  appointmentRepo,
		notificationRepo: notificationRepo,
		delay:            delay,
	}
}

func (s *bookingSink) Commit(ctx context.Context, draft *entity.BookingDraft) (*entity.Appointment, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	appointment := &entity.Appointment{
		ID:        uuid.New(),
		PatientID: draft.PatientID,
		DoctorID:  draft.DoctorID,
		Date:      draft.Date,
		Time:      draft.Slot,
		Status:    entity.AppointmentStatusPending,
		Type:      draft.Type,
		Notes:     draft.Notes,
		CreatedAt: time.Now(),
	}

	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		s.log.Warnf("Failed to record appointment: %+v", err)
		return nil, err
	}

	notification := &entity.Notification{
		ID:     uuid.New(),
		UserID: draft.DoctorID,
		Title:  "New appointment request",
		Message: fmt.Sprintf("A %s has been requested for %s at %s.",
			appointment.Type, appointment.Date.Format("2006-01-02"), appointment.Time),
		Type:      entity.NotificationTypeAppointment,
		CreatedAt: appointment.CreatedAt,
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		s.log.Warnf("Failed to create booking notification: %+v", err)
	}

	return appointment, nil
}
