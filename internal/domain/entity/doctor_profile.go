package entity

import "github.com/google/uuid"

// DoctorProfile holds doctor-specific data, including the weekly
// availability rules consumed by the availability planner
type DoctorProfile struct {
	UserID          uuid.UUID
	Specializations []string
	Department      string
	ExperienceYears int
	Rating          float64
	ReviewCount     int
	IsApproved      bool
	LicenseNumber   string
	Bio             string
	Availability    []AvailabilityRule
}

// HasSpecialization reports whether the doctor lists the given specialization.
func (p *DoctorProfile) HasSpecialization(name string) bool {
	for _, s := range p.Specializations {
		if s == name {
			return true
		}
	}
	return false
}
