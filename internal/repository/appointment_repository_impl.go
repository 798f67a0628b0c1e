package repository

import (
	"sort"
	"strings"
	"sync"

	"medicare-booking/internal/domain/entity"
	domainRepo "medicare-booking/internal/domain/repository"
)

const (
	defaultSearchLimit = 100
	maxSearchLimit     = 200
)

// appointmentRepository keeps the appointment collection in process memory,
// newest first. A single RWMutex guards the slice; there is no persistence.
type appointmentRepository struct {
	mu           sync.RWMutex
	appointments []entity.Appointment
}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Insert(appt *entity.Appointment) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.appointments = append([]entity.Appointment{*appt}, r.appointments...)
}

func (r *appointmentRepository) Search(q string, limit int) []entity.Appointment {
	limit = clampLimit(limit)
	q = strings.ToLower(strings.TrimSpace(q))

	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]entity.Appointment, 0, len(r.appointments))
	for _, appt := range r.appointments {
		if q == "" || strings.Contains(appt.SearchText(), q) {
			matched = append(matched, appt)
		}
	}

	// Stable so that records created in the same instant keep their
	// insertion order (newest at the front).
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}

func (r *appointmentRepository) Remove(id string) *entity.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, appt := range r.appointments {
		if appt.ID == id {
			removed := appt
			r.appointments = append(r.appointments[:i], r.appointments[i+1:]...)
			return &removed
		}
	}
	return nil
}

func (r *appointmentRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.appointments)
}

// clampLimit maps 0 (absent or unparsable) to the default page size and
// clamps everything else into [1, maxSearchLimit].
func clampLimit(limit int) int {
	if limit == 0 {
		return defaultSearchLimit
	}
	if limit < 1 {
		return 1
	}
	if limit > maxSearchLimit {
		return maxSearchLimit
	}
	return limit
}
