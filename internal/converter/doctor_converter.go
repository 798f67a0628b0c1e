package converter

import (
	"medicare-booking/internal/delivery/dto"
	"medicare-booking/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to its response DTO.
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:        doctor.ID,
		Name:      doctor.Name,
		Specialty: doctor.Specialty,
		Rating:    doctor.Rating,
		Hospital:  doctor.Hospital,
		Location:  doctor.Location,
		Slots:     doctor.Slots,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to response DTOs.
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
