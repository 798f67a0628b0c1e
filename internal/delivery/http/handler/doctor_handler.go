package handler

import (
	"net/http"

	"medicare-booking/internal/usecase"
	"medicare-booking/pkg/response"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase) *DoctorHandler {
	return &DoctorHandler{doctorUsecase: doctorUsecase}
}

// ListDoctors handles GET /doctors?specialty=&name=. Both filters are
// optional; with neither set the full catalog is returned as a bare array.
func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	specialty := r.URL.Query().Get("specialty")
	keyword := r.URL.Query().Get("name")

	doctors, err := h.doctorUsecase.ListDoctors(r.Context(), specialty, keyword)
	if err != nil {
		response.InternalServerError(w, "เกิดข้อผิดพลาดภายในระบบ")
		return
	}

	response.JSON(w, http.StatusOK, doctors)
}

// ListSpecialties handles GET /doctors/specialties and returns the fixed
// filter list, sentinel first.
func (h *DoctorHandler) ListSpecialties(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.doctorUsecase.ListSpecialties(r.Context()))
}
