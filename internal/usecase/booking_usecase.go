package usecase

import (
	"context"
	"errors"
	"time"

	"clinicconnect/config"
	"clinicconnect/internal/delivery/dto"
	"clinicconnect/internal/domain/entity"
	"clinicconnect/internal/domain/repository"
	"clinicconnect/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound    = errors.New("doctor not found")
	ErrDoctorNotApproved = errors.New("doctor is not approved for booking")
	ErrDateNotBookable   = errors.New("date is not bookable for this doctor")
	ErrNoDateSelected    = errors.New("select a date before choosing a time slot")
	ErrSlotNotAvailable  = errors.New("time slot is not available on the selected date")
	ErrDraftIncomplete   = errors.New("booking requires a date and a time slot")
)

// BookingUsecase owns the booking draft lifecycle: start the flow for a
// doctor, surface bookable dates and slots from the planner, record the
// patient's selections and submit the finished draft to the booking sink.
type BookingUsecase interface {
	Start(ctx context.Context, patientID, doctorID uuid.UUID) (*entity.BookingDraft, error)
	AvailableDates(ctx context.Context, draft *entity.BookingDraft) ([]time.Time, error)
	AvailableSlots(ctx context.Context, draft *entity.BookingDraft) ([]entity.TimeSlot, error)
	SelectDate(ctx context.Context, draft *entity.BookingDraft, date time.Time) error
	SelectSlot(ctx context.Context, draft *entity.BookingDraft, slot entity.TimeSlot) error
	SetDetails(ctx context.Context, draft *entity.BookingDraft, req *dto.BookingDetailsRequest) error
	Submit(ctx context.Context, draft *entity.BookingDraft) (*dto.BookingConfirmation, error)
}

type bookingUsecase struct {
	log         *logrus.Logger
	doctorRepo  repository.DoctorRepository
	sink        repository.BookingSink
	planner     AvailabilityPlanner
	validator   *validator.CustomValidator
	horizonDays int
}

func NewBookingUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	sink repository.BookingSink,
	planner AvailabilityPlanner,
	customValidator *validator.CustomValidator,
	cfg config.BookingConfig,
) BookingUsecase {
	return &bookingUsecase{
		log:         log,
		doctorRepo:  doctorRepo,
		sink:        sink,
		planner:     planner,
		validator:   customValidator,
		horizonDays: cfg.HorizonDays,
	}
}

func (u *bookingUsecase) Start(ctx context.Context, patientID, doctorID uuid.UUID) (*entity.BookingDraft, error) {
	doctor, err := u.findDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if !doctor.DoctorProfile.IsApproved {
		return nil, ErrDoctorNotApproved
	}

	return &entity.BookingDraft{
		PatientID: patientID,
		DoctorID:  doctorID,
		Type:      entity.AppointmentTypeConsultation,
	}, nil
}

func (u *bookingUsecase) AvailableDates(ctx context.Context, draft *entity.BookingDraft) ([]time.Time, error) {
	doctor, err := u.findDoctor(ctx, draft.DoctorID)
	if err != nil {
		return nil, err
	}
	return u.planner.BookableDates(doctor.DoctorProfile.Availability, time.Now(), u.horizonDays), nil
}

func (u *bookingUsecase) AvailableSlots(ctx context.Context, draft *entity.BookingDraft) ([]entity.TimeSlot, error) {
	if !draft.HasDate() {
		return nil, ErrNoDateSelected
	}
	doctor, err := u.findDoctor(ctx, draft.DoctorID)
	if err != nil {
		return nil, err
	}
	return u.planner.TimeSlots(doctor.DoctorProfile.Availability, draft.Date), nil
}

// SelectDate records the chosen date and resets any previously chosen
// slot, since slots are only valid against the date they were computed
// for.
func (u *bookingUsecase) SelectDate(ctx context.Context, draft *entity.BookingDraft, date time.Time) error {
	dates, err := u.AvailableDates(ctx, draft)
	if err != nil {
		return err
	}

	chosen := startOfDay(date)
	for _, candidate := range dates {
		if candidate.Equal(chosen) {
			draft.Date = chosen
			draft.Slot = ""
			return nil
		}
	}
	return ErrDateNotBookable
}

func (u *bookingUsecase) SelectSlot(ctx context.Context, draft *entity.BookingDraft, slot entity.TimeSlot) error {
	slots, err := u.AvailableSlots(ctx, draft)
	if err != nil {
		return err
	}
	for _, candidate := range slots {
		if candidate == slot {
			draft.Slot = slot
			return nil
		}
	}
	return ErrSlotNotAvailable
}

func (u *bookingUsecase) SetDetails(ctx context.Context, draft *entity.BookingDraft, req *dto.BookingDetailsRequest) error {
	if err := u.validator.Validate(req); err != nil {
		return err
	}
	draft.Type = entity.AppointmentType(req.Type)
	draft.Notes = req.Notes
	return nil
}

func (u *bookingUsecase) Submit(ctx context.Context, draft *entity.BookingDraft) (*dto.BookingConfirmation, error) {
	if !draft.IsComplete() {
		return nil, ErrDraftIncomplete
	}

	doctor, err := u.findDoctor(ctx, draft.DoctorID)
	if err != nil {
		return nil, err
	}

	appointment, err := u.sink.Commit(ctx, draft)
	if err != nil {
		u.log.Warnf("Failed to commit booking: %+v", err)
		return nil, err
	}

	return &dto.BookingConfirmation{
		AppointmentID: appointment.ID,
		DoctorName:    doctor.FullName(),
		Date:          appointment.Date.Format("2006-01-02"),
		Time:          string(appointment.Time),
		Type:          string(appointment.Type),
		Status:        string(appointment.Status),
	}, nil
}

func (u *bookingUsecase) findDoctor(ctx context.Context, doctorID uuid.UUID) (*entity.User, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil || doctor.DoctorProfile == nil {
		return nil, ErrDoctorNotFound
	}
	return doctor, nil
}
