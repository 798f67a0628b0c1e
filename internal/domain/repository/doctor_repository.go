package repository

import (
	"medicare-booking/internal/domain/entity"
)

// DoctorRepository answers read-only directory queries over the fixed
// doctor catalog.
type DoctorRepository interface {
	// FindAll filters by exact specialty (empty or the "ทั้งหมด" sentinel
	// match everything) and by case-insensitive keyword over name,
	// hospital and location, preserving catalog order.
	FindAll(specialty, keyword string) []entity.Doctor
	// Specialties returns the fixed specialty filter list, sentinel first.
	Specialties() []string
}
