package dataset

import (
	"time"

	"clinicconnect/internal/domain/entity"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Dataset is the shared in-memory backing store for every repository.
// It plays the role a database handle plays in a persistent deployment:
// repositories read from and append to its slices.
type Dataset struct {
	Users         []*entity.User
	Departments   []*entity.Department
	Appointments  []*entity.Appointment
	Prescriptions []*entity.Prescription
	Reviews       []*entity.Review
	Notifications []*entity.Notification
}

// DemoPassword is the password every seeded account accepts.
const DemoPassword = "demo123"

// Stable IDs so seeded records can reference each other and tests can
// address specific accounts.
var (
	PatientJohnID     = uuid.MustParse("8f14e45f-ceea-467f-a5c1-03a1c1c1f001")
	DoctorJohnsonID   = uuid.MustParse("8f14e45f-ceea-467f-a5c1-03a1c1c1f002")
	AdminID           = uuid.MustParse("8f14e45f-ceea-467f-a5c1-03a1c1c1f003")
	DoctorMartinezID  = uuid.MustParse("8f14e45f-ceea-467f-a5c1-03a1c1c1f004")
	DoctorChenID      = uuid.MustParse("8f14e45f-ceea-467f-a5c1-03a1c1c1f005")
	DoctorWilsonID    = uuid.MustParse("8f14e45f-ceea-467f-a5c1-03a1c1c1f006")
	AppointmentOneID  = uuid.MustParse("8f14e45f-ceea-467f-a5c1-03a1c1c1f101")
	AppointmentTwoID  = uuid.MustParse("8f14e45f-ceea-467f-a5c1-03a1c1c1f102")
	PrescriptionOneID = uuid.MustParse("8f14e45f-ceea-467f-a5c1-03a1c1c1f201")
	ReviewOneID       = uuid.MustParse("8f14e45f-ceea-467f-a5c1-03a1c1c1f301")
)

// Seed builds the static demo dataset. Appointment dates are placed
// relative to now so the "upcoming" and "today" views have content.
func Seed(now time.Time) *Dataset {
	// MinCost keeps seeding cheap; these are demo accounts, not real credentials.
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	password := string(hash)

	weekdayNineToFive := func(days ...time.Weekday) []entity.AvailabilityRule {
		rules := make([]entity.AvailabilityRule, 0, len(days))
		for _, d := range days {
			rules = append(rules, entity.AvailabilityRule{
				DayOfWeek:   d,
				StartTime:   "09:00",
				EndTime:     "17:00",
				IsAvailable: true,
			})
		}
		return rules
	}

	johnson := &entity.User{
		ID:           DoctorJohnsonID,
		Role:         entity.RoleDoctor,
		Email:        "doctor@demo.com",
		PasswordHash: password,
		FirstName:    "Dr. Sarah",
		LastName:     "Johnson",
		Phone:        "+1-555-0124",
		CreatedAt:    now,
		DoctorProfile: &entity.DoctorProfile{
			UserID:          DoctorJohnsonID,
			Specializations: []string{"Interventional Cardiology"},
			Department:      "Cardiology",
			ExperienceYears: 12,
			Rating:          4.8,
			ReviewCount:     156,
			IsApproved:      true,
			LicenseNumber:   "MD-2024-001",
			Bio:             "Board-certified cardiologist with over 12 years of experience in interventional cardiology.",
			Availability: append(
				weekdayNineToFive(time.Monday, time.Tuesday, time.Wednesday, time.Thursday),
				entity.AvailabilityRule{DayOfWeek: time.Friday, StartTime: "09:00", EndTime: "15:00", IsAvailable: true},
			),
		},
	}

	martinez := &entity.User{
		ID:           DoctorMartinezID,
		Role:         entity.RoleDoctor,
		Email:        "dr.martinez@demo.com",
		PasswordHash: password,
		FirstName:    "Dr. Michael",
		LastName:     "Martinez",
		Phone:        "+1-555-0126",
		CreatedAt:    now,
		DoctorProfile: &entity.DoctorProfile{
			UserID:          DoctorMartinezID,
			Specializations: []string{"Neurosurgery"},
			Department:      "Neurology",
			ExperienceYears: 15,
			Rating:          4.9,
			ReviewCount:     203,
			IsApproved:      true,
			LicenseNumber:   "MD-2024-002",
			Bio:             "Leading neurosurgeon specializing in complex brain and spine surgeries.",
			Availability: []entity.AvailabilityRule{
				{DayOfWeek: time.Monday, StartTime: "08:00", EndTime: "16:00", IsAvailable: true},
				{DayOfWeek: time.Tuesday, StartTime: "08:00", EndTime: "16:00", IsAvailable: true},
				{DayOfWeek: time.Wednesday, StartTime: "08:00", EndTime: "16:00", IsAvailable: true},
				{DayOfWeek: time.Thursday, StartTime: "08:00", EndTime: "16:00", IsAvailable: true},
			},
		},
	}

	chen := &entity.User{
		ID:           DoctorChenID,
		Role:         entity.RoleDoctor,
		Email:        "dr.chen@demo.com",
		PasswordHash: password,
		FirstName:    "Dr. Lisa",
		LastName:     "Chen",
		Phone:        "+1-555-0127",
		CreatedAt:    now,
		DoctorProfile: &entity.DoctorProfile{
			UserID:          DoctorChenID,
			Specializations: []string{"Sports Medicine", "Joint Replacement"},
			Department:      "Orthopedics",
			ExperienceYears: 8,
			Rating:          4.7,
			ReviewCount:     89,
			IsApproved:      true,
			LicenseNumber:   "MD-2024-003",
			Bio:             "Orthopedic surgeon focused on sports injuries and joint replacement procedures.",
			Availability: []entity.AvailabilityRule{
				{DayOfWeek: time.Monday, StartTime: "10:00", EndTime: "18:00", IsAvailable: true},
				{DayOfWeek: time.Tuesday, StartTime: "10:00", EndTime: "18:00", IsAvailable: true},
				{DayOfWeek: time.Thursday, StartTime: "10:00", EndTime: "18:00", IsAvailable: true},
				{DayOfWeek: time.Friday, StartTime: "10:00", EndTime: "18:00", IsAvailable: true},
			},
		},
	}

	// Not yet approved, so the admin approval queue has content.
	wilson := &entity.User{
		ID:           DoctorWilsonID,
		Role:         entity.RoleDoctor,
		Email:        "dr.wilson@demo.com",
		PasswordHash: password,
		FirstName:    "Dr. James",
		LastName:     "Wilson",
		Phone:        "+1-555-0128",
		CreatedAt:    now,
		DoctorProfile: &entity.DoctorProfile{
			UserID:          DoctorWilsonID,
			Specializations: []string{"Neonatology"},
			Department:      "Pediatrics",
			ExperienceYears: 5,
			LicenseNumber:   "MD-2024-004",
			Bio:             "Neonatologist joining from City General Hospital.",
			Availability:    weekdayNineToFive(time.Monday, time.Wednesday, time.Friday),
		},
	}

	john := &entity.User{
		ID:           PatientJohnID,
		Role:         entity.RolePatient,
		Email:        "patient@demo.com",
		PasswordHash: password,
		FirstName:    "John",
		LastName:     "Doe",
		Phone:        "+1-555-0123",
		CreatedAt:    now,
		PatientProfile: &entity.PatientProfile{
			UserID:         PatientJohnID,
			DateOfBirth:    time.Date(1985, time.June, 12, 0, 0, 0, 0, time.UTC),
			Address:        "42 Elm Street, Springfield",
			MedicalHistory: []string{"Hypertension"},
		},
	}

	admin := &entity.User{
		ID:           AdminID,
		Role:         entity.RoleAdmin,
		Email:        "admin@demo.com",
		PasswordHash: password,
		FirstName:    "Admin",
		LastName:     "User",
		Phone:        "+1-555-0125",
		CreatedAt:    now,
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	prescriptionID := PrescriptionOneID

	return &Dataset{
		Users: []*entity.User{john, johnson, admin, martinez, chen, wilson},
		Departments: []*entity.Department{
			{ID: "1", Name: "Cardiology", Description: "Heart and cardiovascular system specialists",
				Specializations: []string{"Interventional Cardiology", "Heart Surgery", "Electrophysiology"}},
			{ID: "2", Name: "Neurology", Description: "Brain and nervous system specialists",
				Specializations: []string{"Neurosurgery", "Stroke Care", "Epilepsy"}},
			{ID: "3", Name: "Orthopedics", Description: "Bone, joint, and muscle specialists",
				Specializations: []string{"Sports Medicine", "Joint Replacement", "Trauma Surgery"}},
			{ID: "4", Name: "Pediatrics", Description: "Children's health specialists",
				Specializations: []string{"Neonatology", "Pediatric Surgery", "Child Development"}},
		},
		Appointments: []*entity.Appointment{
			{
				ID:             AppointmentOneID,
				PatientID:      PatientJohnID,
				DoctorID:       DoctorJohnsonID,
				Date:           today,
				Time:           "10:00",
				Status:         entity.AppointmentStatusConfirmed,
				Type:           entity.AppointmentTypeConsultation,
				Notes:          "Regular check-up for heart condition",
				PrescriptionID: &prescriptionID,
				CreatedAt:      now,
			},
			{
				ID:        AppointmentTwoID,
				PatientID: PatientJohnID,
				DoctorID:  DoctorMartinezID,
				Date:      today.AddDate(0, 0, 5),
				Time:      "14:00",
				Status:    entity.AppointmentStatusPending,
				Type:      entity.AppointmentTypeConsultation,
				Notes:     "Follow-up for headaches",
				CreatedAt: now,
			},
		},
		Prescriptions: []*entity.Prescription{
			{
				ID:            PrescriptionOneID,
				AppointmentID: AppointmentOneID,
				DoctorID:      DoctorJohnsonID,
				PatientID:     PatientJohnID,
				Diagnosis:     "Hypertension management",
				Medications: []entity.Medication{
					{Name: "Lisinopril", Dosage: "10mg", Frequency: "Once daily", Duration: "30 days",
						Instructions: "Take with food in the morning"},
					{Name: "Metformin", Dosage: "500mg", Frequency: "Twice daily", Duration: "30 days",
						Instructions: "Take with meals"},
				},
				Notes:     "Monitor blood pressure regularly. Follow up in 4 weeks.",
				CreatedAt: now,
			},
		},
		Reviews: []*entity.Review{
			{
				ID:            ReviewOneID,
				FromUserID:    PatientJohnID,
				ToUserID:      DoctorJohnsonID,
				AppointmentID: AppointmentOneID,
				Rating:        5,
				Comment:       "Excellent care and very professional. Dr. Johnson explained everything clearly.",
				CreatedAt:     now,
			},
		},
		Notifications: []*entity.Notification{
			{
				ID:        uuid.New(),
				UserID:    PatientJohnID,
				Title:     "Welcome to ClinicConnect",
				Message:   "Your account is ready. Book your first appointment from the doctor directory.",
				Type:      entity.NotificationTypeSystem,
				CreatedAt: now,
			},
		},
	}
}
