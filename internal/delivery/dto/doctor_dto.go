package dto

import "github.com/google/uuid"

type AvailabilityRuleResponse struct {
	Day         string
	StartTime   string
	EndTime     string
	IsAvailable bool
}

type DoctorResponse struct {
	ID              uuid.UUID
	FullName        string
	Email           string
	Specializations []string
	Department      string
	ExperienceYears int
	Rating          float64
	ReviewCount     int
	IsApproved      bool
	LicenseNumber   string
	Bio             string
	Availability    []AvailabilityRuleResponse
}

type DepartmentResponse struct {
	ID              string
	Name            string
	Description     string
	Specializations []string
}

type ReviewResponse struct {
	Rating    int
	Comment   string
	Reviewer  string
	CreatedAt string
}
