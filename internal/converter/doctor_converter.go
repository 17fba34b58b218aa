package converter

import (
	"clinicconnect/internal/delivery/dto"
	"clinicconnect/internal/domain/entity"
)

// DoctorToResponse converts a user carrying a doctor profile to its view
// model. Returns nil when the user has no doctor profile.
func DoctorToResponse(user *entity.User) *dto.DoctorResponse {
	if user == nil || user.DoctorProfile == nil {
		return nil
	}
	profile := user.DoctorProfile

	availability := make([]dto.AvailabilityRuleResponse, len(profile.Availability))
	for i, rule := range profile.Availability {
		availability[i] = dto.AvailabilityRuleResponse{
			Day:         rule.DayOfWeek.String(),
			StartTime:   rule.StartTime,
			EndTime:     rule.EndTime,
			IsAvailable: rule.IsAvailable,
		}
	}

	return &dto.DoctorResponse{
		ID:              user.ID,
		FullName:        user.FullName(),
		Email:           user.Email,
		Specializations: profile.Specializations,
		Department:      profile.Department,
		ExperienceYears: profile.ExperienceYears,
		Rating:          profile.Rating,
		ReviewCount:     profile.ReviewCount,
		IsApproved:      profile.IsApproved,
		LicenseNumber:   profile.LicenseNumber,
		Bio:             profile.Bio,
		Availability:    availability,
	}
}

// DepartmentToResponse converts a Department entity to its view model
func DepartmentToResponse(department *entity.Department) *dto.DepartmentResponse {
	if department == nil {
		return nil
	}
	return &dto.DepartmentResponse{
		ID:              department.ID,
		Name:            department.Name,
		Description:     department.Description,
		Specializations: department.Specializations,
	}
}

// ReviewToResponse converts a Review entity to its view model. The
// reviewer name is resolved by the caller, since reviews only carry ids.
func ReviewToResponse(review *entity.Review, reviewer string) dto.ReviewResponse {
	return dto.ReviewResponse{
		Rating:    review.Rating,
		Comment:   review.Comment,
		Reviewer:  reviewer,
		CreatedAt: review.CreatedAt.Format("2006-01-02"),
	}
}
