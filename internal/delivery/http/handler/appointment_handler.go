package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"medicare-booking/internal/delivery/dto"
	"medicare-booking/internal/usecase"
	"medicare-booking/internal/validators"
	"medicare-booking/pkg/response"
)

type AppointmentHandler struct {
	bookingUsecase usecase.BookingUsecase
}

func NewAppointmentHandler(bookingUsecase usecase.BookingUsecase) *AppointmentHandler {
	return &AppointmentHandler{bookingUsecase: bookingUsecase}
}

// CreateAppointment handles POST /appointments. A valid submission is
// answered with 201 and the stored appointment; a rule violation with 400
// and the rule's message.
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "รูปแบบข้อมูลไม่ถูกต้อง")
		return
	}

	appt, err := h.bookingUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		if validators.IsRuleError(err) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalServerError(w, "เกิดข้อผิดพลาดภายในระบบ")
		return
	}

	response.JSON(w, http.StatusCreated, appt)
}

// ListAppointments handles GET /appointments?q=&limit=. An unparsable
// limit falls back to the store default.
func (h *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	list, err := h.bookingUsecase.ListAppointments(r.Context(), q, limit)
	if err != nil {
		response.InternalServerError(w, "เกิดข้อผิดพลาดภายในระบบ")
		return
	}

	response.JSON(w, http.StatusOK, list)
}

// CancelAppointment handles DELETE /appointments?id=.
func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		response.BadRequest(w, "ต้องระบุ id ของนัดที่ต้องการลบ")
		return
	}

	removedID, err := h.bookingUsecase.CancelAppointment(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrAppointmentNotFound) {
			response.NotFound(w, "ไม่พบนัดหมายนี้")
			return
		}
		response.InternalServerError(w, "เกิดข้อผิดพลาดภายในระบบ")
		return
	}

	response.JSON(w, http.StatusOK, dto.CancelAppointmentResponse{
		Success:   true,
		RemovedID: removedID,
	})
}
