package converter

import (
	"clinicconnect/internal/delivery/dto"
	"clinicconnect/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment to its view model.
// Doctor and patient may be nil when the counterpart is not needed by
// the view; their names are rendered empty in that case.
func AppointmentToResponse(appointment *entity.Appointment, doctor, patient *entity.User) dto.AppointmentResponse {
	response := dto.AppointmentResponse{
		ID:        appointment.ID,
		Date:      appointment.Date.Format("2006-01-02"),
		Time:      string(appointment.Time),
		Status:    string(appointment.Status),
		Type:      string(appointment.Type),
		Notes:     appointment.Notes,
		CreatedAt: appointment.CreatedAt,
	}
	if doctor != nil {
		response.DoctorName = doctor.FullName()
	}
	if patient != nil {
		response.PatientName = patient.FullName()
	}
	return response
}

// PrescriptionToResponse converts a Prescription to its view model
func PrescriptionToResponse(prescription *entity.Prescription, doctor *entity.User) dto.PrescriptionResponse {
	response := dto.PrescriptionResponse{
		ID:          prescription.ID,
		Diagnosis:   prescription.Diagnosis,
		Medications: len(prescription.Medications),
		Notes:       prescription.Notes,
		CreatedAt:   prescription.CreatedAt,
	}
	if doctor != nil {
		response.DoctorName = doctor.FullName()
	}
	return response
}
