package client

import (
	"encoding/json"
	"os"
	"sync"

	"medicare-booking/internal/domain/entity"
)

// SyncState marks whether a locally held appointment is the server's
// authoritative copy or a local synthesis awaiting a sync that never
// happens retroactively.
type SyncState string

const (
	SyncServerConfirmed SyncState = "server-confirmed"
	SyncLocalOnly       SyncState = "local-only-pending-sync"
)

// LocalAppointment is an appointment as the patient's device sees it.
type LocalAppointment struct {
	entity.Appointment
	Sync SyncState `json:"sync"`
}

// state is the durable local snapshot, written as one JSON document.
type state struct {
	Authed       bool               `json:"authed"`
	PatientName  string             `json:"patientName,omitempty"`
	Appointments []LocalAppointment `json:"appointments"`
}

// Storage persists the client's session flag, display name and appointment
// list to a JSON file. Every mutation is written through immediately, so
// the snapshot survives process restarts.
type Storage struct {
	mu    sync.Mutex
	path  string
	state state
}

// NewStorage loads the snapshot at path, or starts empty when the file
// does not exist yet.
func NewStorage(path string) (*Storage, error) {
	s := &Storage{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, &s.state); err != nil {
		return nil, err
	}
	return s, nil
}

// Session returns the persisted authenticated flag and display name.
func (s *Storage) Session() (bool, string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Authed, s.state.PatientName
}

// SetSession stores the authenticated flag and display name.
func (s *Storage) SetSession(authed bool, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Authed = authed
	s.state.PatientName = name
	return s.writeLocked()
}

// Appointments returns a copy of the locally held appointment list.
func (s *Storage) Appointments() []LocalAppointment {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]LocalAppointment, len(s.state.Appointments))
	copy(out, s.state.Appointments)
	return out
}

// Prepend inserts an appointment at the front of the local list.
func (s *Storage) Prepend(appt LocalAppointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Appointments = append([]LocalAppointment{appt}, s.state.Appointments...)
	return s.writeLocked()
}

// Replace swaps the whole local list for the given one.
func (s *Storage) Replace(appointments []LocalAppointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Appointments = appointments
	return s.writeLocked()
}

// RemoveByID drops the appointment with the given id, if present.
func (s *Storage) RemoveByID(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.state.Appointments[:0]
	for _, a := range s.state.Appointments {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.state.Appointments = kept
	return s.writeLocked()
}

// Clear wipes all persisted session and appointment state (logout).
func (s *Storage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = state{}
	return s.writeLocked()
}

func (s *Storage) writeLocked() error {
	data, err := json.Marshal(&s.state)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}
