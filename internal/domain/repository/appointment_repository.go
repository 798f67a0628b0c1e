package repository

import (
	"medicare-booking/internal/domain/entity"
)

// AppointmentRepository is the in-process appointment collection. The
// implementation owns the backing storage for the lifetime of the process;
// a restart loses all records.
type AppointmentRepository interface {
	// Insert adds the appointment at the front (most-recent-first).
	Insert(appt *entity.Appointment)
	// Search returns appointments whose searchable text contains q
	// (case-insensitive), newest first, truncated to limit. A limit of 0
	// means the default page size; out-of-range values are clamped.
	Search(q string, limit int) []entity.Appointment
	// Remove deletes the appointment with the given id and returns it,
	// or nil when no record matches.
	Remove(id string) *entity.Appointment
	// Count returns the number of stored appointments.
	Count() int
}
