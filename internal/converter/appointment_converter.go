package converter

import (
	"medicare-booking/internal/delivery/dto"
	"medicare-booking/internal/domain/entity"
)

// RequestToBookingPayload converts a booking submission DTO to the domain
// payload.
func RequestToBookingPayload(req *dto.CreateAppointmentRequest) *entity.BookingPayload {
	if req == nil {
		return nil
	}

	return &entity.BookingPayload{
		DoctorID:    req.DoctorID,
		DoctorName:  req.DoctorName,
		Specialty:   req.Specialty,
		Datetime:    req.Datetime,
		VisitType:   entity.VisitType(req.VisitType),
		PhoneNumber: req.PhoneNumber,
		Symptoms:    req.Symptoms,
		Insurance:   entity.InsuranceType(req.Insurance),
		PolicyID:    req.PolicyID,
		Notes:       req.Notes,
		Hospital:    req.Hospital,
		Location:    req.Location,
	}
}

// AppointmentToResponse converts an Appointment entity to its response DTO.
func AppointmentToResponse(appt *entity.Appointment) *dto.AppointmentResponse {
	if appt == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:          appt.ID,
		DoctorID:    appt.DoctorID,
		DoctorName:  appt.DoctorName,
		Specialty:   appt.Specialty,
		Datetime:    appt.Datetime,
		VisitType:   string(appt.VisitType),
		PhoneNumber: appt.PhoneNumber,
		Symptoms:    appt.Symptoms,
		Insurance:   string(appt.Insurance),
		PolicyID:    appt.PolicyID,
		Notes:       appt.Notes,
		Hospital:    appt.Hospital,
		Location:    appt.Location,
		Status:      string(appt.Status),
		CreatedAt:   appt.CreatedAt,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to
// response DTOs.
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
