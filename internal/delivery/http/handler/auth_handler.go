package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"medicare-booking/internal/delivery/dto"
	"medicare-booking/internal/usecase"
	"medicare-booking/pkg/response"
	"medicare-booking/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// Login handles POST /login. Missing fields are a 400; a wrong email or
// password is a 401 with a single undifferentiated message.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "email และ password จำเป็น")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, "email และ password จำเป็น")
		return
	}

	result, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			response.Unauthorized(w, err.Error())
			return
		}
		response.InternalServerError(w, "เกิดข้อผิดพลาดภายในระบบ")
		return
	}

	response.JSON(w, http.StatusOK, result)
}
