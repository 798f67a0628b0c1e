package usecase

import (
	"context"

	"medicare-booking/internal/converter"
	"medicare-booking/internal/delivery/dto"
	"medicare-booking/internal/domain/repository"
)

type DoctorUsecase interface {
	ListDoctors(ctx context.Context, specialty, keyword string) ([]dto.DoctorResponse, error)
	ListSpecialties(ctx context.Context) []string
}

type doctorUsecase struct {
	doctorRepo repository.DoctorRepository
}

func NewDoctorUsecase(doctorRepo repository.DoctorRepository) DoctorUsecase {
	return &doctorUsecase{doctorRepo: doctorRepo}
}

func (u *doctorUsecase) ListDoctors(ctx context.Context, specialty, keyword string) ([]dto.DoctorResponse, error) {
	doctors := u.doctorRepo.FindAll(specialty, keyword)
	return converter.DoctorsToResponses(doctors), nil
}

func (u *doctorUsecase) ListSpecialties(ctx context.Context) []string {
	return u.doctorRepo.Specialties()
}
