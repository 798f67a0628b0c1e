package usecase

import (
	"context"
	"io"
	"testing"

	"medicare-booking/internal/delivery/dto"
	"medicare-booking/internal/domain/entity"
	"medicare-booking/internal/repository"
	"medicare-booking/internal/validators"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func fixedStatus(status entity.AppointmentStatus) StatusPicker {
	return func() entity.AppointmentStatus { return status }
}

func bookingRequest() *dto.CreateAppointmentRequest {
	return &dto.CreateAppointmentRequest{
		DoctorID:    "d2",
		DoctorName:  "พญ. ชนัญชิดา ลีวัฒน์",
		Specialty:   "ผิวหนัง",
		Hospital:    "MediCare Clinic (สยาม)",
		Location:    "กรุงเทพฯ",
		Datetime:    "2026-09-15T10:30:00Z",
		VisitType:   "video",
		PhoneNumber: "081-234-5678",
		Symptoms:    "fever for days",
		Insurance:   "self",
	}
}

func TestBookingUsecase(t *testing.T) {
	ctx := context.Background()

	t.Run("Create Assigns Identity And Picked Status", func(t *testing.T) {
		u := NewBookingUsecase(quietLogger(), repository.NewAppointmentRepository(), fixedStatus(entity.StatusConfirmed))

		appt, err := u.CreateAppointment(ctx, bookingRequest())
		require.NoError(t, err)
		assert.NotEmpty(t, appt.ID)
		assert.Equal(t, string(entity.StatusConfirmed), appt.Status)
		assert.False(t, appt.CreatedAt.IsZero())
		assert.Equal(t, "พญ. ชนัญชิดา ลีวัฒน์", appt.DoctorName)
	})

	t.Run("Identifiers Are Unique", func(t *testing.T) {
		u := NewBookingUsecase(quietLogger(), repository.NewAppointmentRepository(), fixedStatus(entity.StatusPending))

		seen := map[string]bool{}
		for i := 0; i < 50; i++ {
			appt, err := u.CreateAppointment(ctx, bookingRequest())
			require.NoError(t, err)
			assert.False(t, seen[appt.ID], "duplicate id %s", appt.ID)
			seen[appt.ID] = true
		}
	})

	t.Run("New Appointment Listed First", func(t *testing.T) {
		u := NewBookingUsecase(quietLogger(), repository.NewAppointmentRepository(), fixedStatus(entity.StatusPending))

		first, err := u.CreateAppointment(ctx, bookingRequest())
		require.NoError(t, err)
		second, err := u.CreateAppointment(ctx, bookingRequest())
		require.NoError(t, err)

		list, err := u.ListAppointments(ctx, "", 0)
		require.NoError(t, err)
		require.Equal(t, 2, list.Total)
		assert.Equal(t, second.ID, list.Items[0].ID)
		assert.Equal(t, first.ID, list.Items[1].ID)
	})

	t.Run("Rejection Surfaces Rule Error", func(t *testing.T) {
		u := NewBookingUsecase(quietLogger(), repository.NewAppointmentRepository(), fixedStatus(entity.StatusPending))

		req := bookingRequest()
		req.Symptoms = "ok"
		_, err := u.CreateAppointment(ctx, req)
		require.Error(t, err)
		assert.True(t, validators.IsRuleError(err))
		assert.Equal(t, validators.ErrSymptomsTooShort.Error(), err.Error())

		list, err := u.ListAppointments(ctx, "", 0)
		require.NoError(t, err)
		assert.Zero(t, list.Total, "rejected submission must not be stored")
	})

	t.Run("List Filters By Query", func(t *testing.T) {
		u := NewBookingUsecase(quietLogger(), repository.NewAppointmentRepository(), fixedStatus(entity.StatusPending))

		_, err := u.CreateAppointment(ctx, bookingRequest())
		require.NoError(t, err)

		other := bookingRequest()
		other.DoctorName = "นพ. กฤตนัย วงศ์สุข"
		other.Specialty = "กระดูกและข้อ"
		other.Symptoms = "knee pain weeks"
		_, err = u.CreateAppointment(ctx, other)
		require.NoError(t, err)

		list, err := u.ListAppointments(ctx, "knee", 0)
		require.NoError(t, err)
		require.Equal(t, 1, list.Total)
		assert.Equal(t, "นพ. กฤตนัย วงศ์สุข", list.Items[0].DoctorName)
	})

	t.Run("Cancel Round Trip", func(t *testing.T) {
		repo := repository.NewAppointmentRepository()
		u := NewBookingUsecase(quietLogger(), repo, fixedStatus(entity.StatusPending))

		before := repo.Count()
		appt, err := u.CreateAppointment(ctx, bookingRequest())
		require.NoError(t, err)

		removedID, err := u.CancelAppointment(ctx, appt.ID)
		require.NoError(t, err)
		assert.Equal(t, appt.ID, removedID)
		assert.Equal(t, before, repo.Count())

		_, err = u.CancelAppointment(ctx, appt.ID)
		assert.ErrorIs(t, err, ErrAppointmentNotFound, "second cancel of the same id")
	})

	t.Run("Cancel Unknown ID", func(t *testing.T) {
		u := NewBookingUsecase(quietLogger(), repository.NewAppointmentRepository(), fixedStatus(entity.StatusPending))

		_, err := u.CancelAppointment(ctx, "no-such-id")
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})

	t.Run("Random Status Stays In Range", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			status := RandomStatus()
			assert.Contains(t, []entity.AppointmentStatus{entity.StatusConfirmed, entity.StatusPending}, status)
		}
	})
}
