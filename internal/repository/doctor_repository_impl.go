package repository

import (
	"strings"

	"medicare-booking/internal/domain/entity"
	domainRepo "medicare-booking/internal/domain/repository"
)

// doctorRepository serves the fixed catalog seeded at construction.
// Records are never mutated, so reads need no locking.
type doctorRepository struct {
	doctors []entity.Doctor
}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{doctors: doctorCatalog}
}

func (r *doctorRepository) FindAll(specialty, keyword string) []entity.Doctor {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	matchAll := specialty == "" || specialty == entity.SpecialtyAll

	result := make([]entity.Doctor, 0, len(r.doctors))
	for _, d := range r.doctors {
		if !matchAll && d.Specialty != specialty {
			continue
		}
		if keyword != "" {
			text := strings.ToLower(d.Name + " " + d.Hospital + " " + d.Location)
			if !strings.Contains(text, keyword) {
				continue
			}
		}
		result = append(result, d)
	}
	return result
}

func (r *doctorRepository) Specialties() []string {
	return entity.Specialties
}
