package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the shared account record for all three roles
type User struct {
	ID           uuid.UUID
	Role         Role
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
	CreatedAt    time.Time

	// Role-specific profile, at most one of these is set
	DoctorProfile  *DoctorProfile
	PatientProfile *PatientProfile
}

// FullName returns the display name used across dashboards.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// IsDoctor reports whether the user carries a doctor profile.
func (u *User) IsDoctor() bool {
	return u.Role == RoleDoctor && u.DoctorProfile != nil
}

// IsPatient reports whether the user carries a patient profile.
func (u *User) IsPatient() bool {
	return u.Role == RolePatient && u.PatientProfile != nil
}
