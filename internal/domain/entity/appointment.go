package entity

import (
	"strings"
	"time"
)

// AppointmentStatus represents the status of an appointment.
// Statuses are the fixed Thai strings shown to the patient.
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "ยืนยันแล้ว"
	StatusUpcoming  AppointmentStatus = "กำลังจะถึง"
	StatusPending   AppointmentStatus = "รอดำเนินการ"
)

// VisitType represents how the patient meets the doctor.
type VisitType string

const (
	VisitOnsite VisitType = "onsite"
	VisitVideo  VisitType = "video"
)

// InsuranceType represents the patient's coverage category.
type InsuranceType string

const (
	InsuranceSelfPay   InsuranceType = "self"
	InsuranceUniversal InsuranceType = "universal"
	InsuranceSocial    InsuranceType = "social"
	InsurancePrivate   InsuranceType = "private"
)

// RequiresPolicyID reports whether the coverage category needs a policy
// or entitlement number on the booking.
func (i InsuranceType) RequiresPolicyID() bool {
	return i != InsuranceSelfPay
}

// BookingPayload is the patient's booking submission. Doctor fields are a
// denormalized point-in-time snapshot, not a foreign key.
type BookingPayload struct {
	DoctorID    string        `json:"doctorId"`
	DoctorName  string        `json:"doctorName"`
	Specialty   string        `json:"specialty"`
	Datetime    string        `json:"datetime"`
	VisitType   VisitType     `json:"visitType"`
	PhoneNumber string        `json:"phoneNumber"`
	Symptoms    string        `json:"symptoms"`
	Insurance   InsuranceType `json:"insurance"`
	PolicyID    string        `json:"policyId,omitempty"`
	Notes       string        `json:"notes,omitempty"`
	Hospital    string        `json:"hospital,omitempty"`
	Location    string        `json:"location,omitempty"`
}

// Appointment is a stored booking. Immutable once created; it is only ever
// removed by explicit cancellation.
type Appointment struct {
	ID string `json:"id"`
	BookingPayload
	Status    AppointmentStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
}

// SearchText returns the lowercased text the store matches substring
// queries against.
func (a *Appointment) SearchText() string {
	parts := []string{
		a.DoctorName,
		a.Specialty,
		a.Hospital,
		a.Location,
		a.Symptoms,
		string(a.Status),
	}
	fields := parts[:0]
	for _, p := range parts {
		if p != "" {
			fields = append(fields, p)
		}
	}
	return strings.ToLower(strings.Join(fields, " "))
}
