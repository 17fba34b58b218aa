package usecase

import (
	"context"
	"errors"
	"time"

	"clinicconnect/internal/converter"
	"clinicconnect/internal/delivery/dto"
	"clinicconnect/internal/domain/entity"
	"clinicconnect/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound     = errors.New("appointment not found")
	ErrNotAppointmentOwner     = errors.New("appointment belongs to another user")
	ErrInvalidStatusTransition = errors.New("appointment status does not allow this action")
)

// AppointmentUsecase serves the per-role appointment listings and the
// doctor-side status transitions. Legal transitions: pending -> confirmed
// or cancelled, confirmed -> completed or cancelled.
type AppointmentUsecase interface {
	ListForPatient(ctx context.Context, patientID uuid.UUID) ([]dto.AppointmentResponse, error)
	ListForDoctor(ctx context.Context, doctorID uuid.UUID) ([]dto.AppointmentResponse, error)
	TodayForDoctor(ctx context.Context, doctorID uuid.UUID) ([]dto.AppointmentResponse, error)
	Confirm(ctx context.Context, doctorID, appointmentID uuid.UUID) error
	Complete(ctx context.Context, doctorID, appointmentID uuid.UUID) error
	Cancel(ctx context.Context, actorID, appointmentID uuid.UUID) error
}

type appointmentUsecase struct {
	log              *logrus.Logger
	appointmentRepo  repository.AppointmentRepository
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	userRepo repository.UserRepository,
	notificationRepo repository.NotificationRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:              log,
		appointmentRepo:  appointmentRepo,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
	}
}

func (u *appointmentUsecase) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to list patient appointments: %+v", err)
		return nil, err
	}
	return u.toResponses(ctx, appointments)
}

func (u *appointmentUsecase) ListForDoctor(ctx context.Context, doctorID uuid.UUID) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindByDoctorID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to list doctor appointments: %+v", err)
		return nil, err
	}
	return u.toResponses(ctx, appointments)
}

func (u *appointmentUsecase) TodayForDoctor(ctx context.Context, doctorID uuid.UUID) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindByDoctorID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to list doctor appointments: %+v", err)
		return nil, err
	}

	today := time.Now()
	todays := make([]*entity.Appointment, 0)
	for _, appointment := range appointments {
		if appointment.OnDay(today) && appointment.Status != entity.AppointmentStatusCancelled {
			todays = append(todays, appointment)
		}
	}
	return u.toResponses(ctx, todays)
}

func (u *appointmentUsecase) Confirm(ctx context.Context, doctorID, appointmentID uuid.UUID) error {
	appointment, err := u.ownedByDoctor(ctx, doctorID, appointmentID)
	if err != nil {
		return err
	}
	if !appointment.IsPending() {
		return ErrInvalidStatusTransition
	}

	appointment.Confirm()
	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		u.log.Warnf("Failed to confirm appointment: %+v", err)
		return err
	}
	u.notifyPatient(ctx, appointment, "Appointment confirmed",
		"Your appointment on "+appointment.Date.Format("2006-01-02")+" at "+string(appointment.Time)+" was confirmed.")
	return nil
}

func (u *appointmentUsecase) Complete(ctx context.Context, doctorID, appointmentID uuid.UUID) error {
	appointment, err := u.ownedByDoctor(ctx, doctorID, appointmentID)
	if err != nil {
		return err
	}
	if !appointment.IsConfirmed() {
		return ErrInvalidStatusTransition
	}

	appointment.Complete()
	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		u.log.Warnf("Failed to complete appointment: %+v", err)
		return err
	}
	return nil
}

// Cancel is allowed to either side of the appointment while it is still
// open.
func (u *appointmentUsecase) Cancel(ctx context.Context, actorID, appointmentID uuid.UUID) error {
	appointment, err := u.find(ctx, appointmentID)
	if err != nil {
		return err
	}
	if appointment.DoctorID != actorID && appointment.PatientID != actorID {
		return ErrNotAppointmentOwner
	}
	if !appointment.IsOpen() {
		return ErrInvalidStatusTransition
	}

	appointment.Cancel()
	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		u.log.Warnf("Failed to cancel appointment: %+v", err)
		return err
	}
	return nil
}

func (u *appointmentUsecase) find(ctx context.Context, appointmentID uuid.UUID) (*entity.Appointment, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return appointment, nil
}

func (u *appointmentUsecase) ownedByDoctor(ctx context.Context, doctorID, appointmentID uuid.UUID) (*entity.Appointment, error) {
	appointment, err := u.find(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment.DoctorID != doctorID {
		return nil, ErrNotAppointmentOwner
	}
	return appointment, nil
}

func (u *appointmentUsecase) toResponses(ctx context.Context, appointments []*entity.Appointment) ([]dto.AppointmentResponse, error) {
	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for _, appointment := range appointments {
		doctor, err := u.userRepo.FindByID(ctx, appointment.DoctorID)
		if err != nil {
			return nil, err
		}
		patient, err := u.userRepo.FindByID(ctx, appointment.PatientID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, converter.AppointmentToResponse(appointment, doctor, patient))
	}
	return responses, nil
}

func (u *appointmentUsecase) notifyPatient(ctx context.Context, appointment *entity.Appointment, title, message string) {
	notification := &entity.Notification{
		ID:        uuid.New(),
		UserID:    appointment.PatientID,
		Title:     title,
		Message:   message,
		Type:      entity.NotificationTypeAppointment,
		CreatedAt: time.Now(),
	}
	if err := u.notificationRepo.Create(ctx, notification); err != nil {
		u.log.Warnf("Failed to create appointment notification: %+v", err)
	}
}
