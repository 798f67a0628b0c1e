package usecase

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"medicare-booking/internal/converter"
	"medicare-booking/internal/delivery/dto"
	"medicare-booking/internal/domain/entity"
	"medicare-booking/internal/domain/repository"
	"medicare-booking/internal/validators"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

// StatusPicker chooses the status assigned to a newly stored appointment.
// Injectable so tests can substitute a deterministic source.
type StatusPicker func() entity.AppointmentStatus

// RandomStatus picks confirmed or pending uniformly at random. This is a
// placeholder policy; nothing in the system computes status from real
// scheduling state.
func RandomStatus() entity.AppointmentStatus {
	statuses := []entity.AppointmentStatus{entity.StatusConfirmed, entity.StatusPending}
	return statuses[rand.Intn(len(statuses))]
}

type BookingUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	ListAppointments(ctx context.Context, q string, limit int) (*dto.AppointmentListResponse, error)
	CancelAppointment(ctx context.Context, id string) (string, error)
}

type bookingUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	pickStatus      StatusPicker
	now             func() time.Time
}

func NewBookingUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	pickStatus StatusPicker,
) BookingUsecase {
	return &bookingUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		pickStatus:      pickStatus,
		now:             time.Now,
	}
}

// CreateAppointment validates the submission, stamps it with a generated
// identifier, a picked status and the current time, and stores it.
func (u *bookingUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	payload := converter.RequestToBookingPayload(req)

	if err := validators.ValidateBooking(payload); err != nil {
		return nil, err
	}

	appt := &entity.Appointment{
		ID:             uuid.NewString(),
		BookingPayload: *payload,
		Status:         u.pickStatus(),
		CreatedAt:      u.now().UTC(),
	}

	u.appointmentRepo.Insert(appt)

	u.log.WithFields(logrus.Fields{
		"appointment_id": appt.ID,
		"doctor":         appt.DoctorName,
		"status":         appt.Status,
	}).Info("Appointment created")

	return converter.AppointmentToResponse(appt), nil
}

// ListAppointments returns stored appointments matching the optional
// substring query, newest first, truncated to the (clamped) limit.
func (u *bookingUsecase) ListAppointments(ctx context.Context, q string, limit int) (*dto.AppointmentListResponse, error) {
	appointments := u.appointmentRepo.Search(q, limit)

	return &dto.AppointmentListResponse{
		Items: converter.AppointmentsToResponses(appointments),
		Total: len(appointments),
	}, nil
}

// CancelAppointment removes the appointment with the given id and returns
// the removed id.
func (u *bookingUsecase) CancelAppointment(ctx context.Context, id string) (string, error) {
	removed := u.appointmentRepo.Remove(id)
	if removed == nil {
		return "", ErrAppointmentNotFound
	}

	u.log.WithField("appointment_id", removed.ID).Info("Appointment cancelled")
	return removed.ID, nil
}
