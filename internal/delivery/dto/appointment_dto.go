package dto

import "time"

// Request DTOs

// CreateAppointmentRequest is the booking submission body. Shape and
// business rules are checked by the booking rule chain, not struct tags,
// because the first failing rule's message must be returned verbatim.
type CreateAppointmentRequest struct {
	DoctorID    string `json:"doctorId"`
	DoctorName  string `json:"doctorName"`
	Specialty   string `json:"specialty"`
	Datetime    string `json:"datetime"`
	VisitType   string `json:"visitType"`
	PhoneNumber string `json:"phoneNumber"`
	Symptoms    string `json:"symptoms"`
	Insurance   string `json:"insurance"`
	PolicyID    string `json:"policyId"`
	Notes       string `json:"notes"`
	Hospital    string `json:"hospital"`
	Location    string `json:"location"`
}

// Response DTOs

type AppointmentResponse struct {
	ID          string    `json:"id"`
	DoctorID    string    `json:"doctorId"`
	DoctorName  string    `json:"doctorName"`
	Specialty   string    `json:"specialty"`
	Datetime    string    `json:"datetime"`
	VisitType   string    `json:"visitType"`
	PhoneNumber string    `json:"phoneNumber"`
	Symptoms    string    `json:"symptoms"`
	Insurance   string    `json:"insurance"`
	PolicyID    string    `json:"policyId,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Hospital    string    `json:"hospital,omitempty"`
	Location    string    `json:"location,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type AppointmentListResponse struct {
	Items []AppointmentResponse `json:"items"`
	Total int                   `json:"total"`
}

type CancelAppointmentResponse struct {
	Success   bool   `json:"success"`
	RemovedID string `json:"removedId"`
}
