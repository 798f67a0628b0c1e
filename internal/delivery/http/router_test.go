package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"medicare-booking/config"
	"medicare-booking/internal/delivery/dto"
	"medicare-booking/internal/delivery/http/handler"
	"medicare-booking/internal/delivery/http/middleware"
	"medicare-booking/internal/domain/entity"
	"medicare-booking/internal/repository"
	"medicare-booking/internal/usecase"
	"medicare-booking/pkg/jwt"
	"medicare-booking/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(t *testing.T) *mux.Router {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	tokenService := jwt.NewTokenService(config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})

	bookingUsecase := usecase.NewBookingUsecase(log, repository.NewAppointmentRepository(),
		func() entity.AppointmentStatus { return entity.StatusConfirmed })
	doctorUsecase := usecase.NewDoctorUsecase(repository.NewDoctorRepository())
	authUsecase, err := usecase.NewAuthUsecase(log, tokenService, config.AuthConfig{
		Email:    "pakonchai@gmail.com",
		Password: "1234",
	})
	require.NoError(t, err)

	router := NewRouter(
		handler.NewAppointmentHandler(bookingUsecase),
		handler.NewDoctorHandler(doctorUsecase),
		handler.NewAuthHandler(authUsecase, validator.NewValidator()),
		middleware.NewCORSMiddleware(),
	)
	return router.Setup()
}

func doJSON(t *testing.T, router *mux.Router, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func validBooking() map[string]interface{} {
	return map[string]interface{}{
		"doctorId":    "d2",
		"doctorName":  "พญ. ชนัญชิดา ลีวัฒน์",
		"specialty":   "ผิวหนัง",
		"hospital":    "MediCare Clinic (สยาม)",
		"location":    "กรุงเทพฯ",
		"datetime":    "2026-09-15T10:30:00Z",
		"visitType":   "video",
		"phoneNumber": "081-234-5678",
		"symptoms":    "fever for days",
		"insurance":   "self",
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestAppointmentEndpoints(t *testing.T) {
	t.Run("Create Then List", func(t *testing.T) {
		router := testRouter(t)

		rec := doJSON(t, router, http.MethodPost, "/appointments", validBooking())
		require.Equal(t, http.StatusCreated, rec.Code)

		var created dto.AppointmentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, string(entity.StatusConfirmed), created.Status)

		rec = doJSON(t, router, http.MethodGet, "/appointments", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var list dto.AppointmentListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		require.Equal(t, 1, list.Total)
		assert.Equal(t, created.ID, list.Items[0].ID)
	})

	t.Run("Create Rejects Rule Violation", func(t *testing.T) {
		router := testRouter(t)

		payload := validBooking()
		payload["symptoms"] = "ok"
		rec := doJSON(t, router, http.MethodPost, "/appointments", payload)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "กรุณาระบุอาการอย่างน้อย 5 อักขระ", decodeError(t, rec))
	})

	t.Run("Create Rejects Malformed JSON", func(t *testing.T) {
		router := testRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/appointments", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "รูปแบบข้อมูลไม่ถูกต้อง", decodeError(t, rec))
	})

	t.Run("List Respects Query And Limit", func(t *testing.T) {
		router := testRouter(t)

		first := validBooking()
		first["symptoms"] = "fever for days"
		require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/appointments", first).Code)

		second := validBooking()
		second["doctorName"] = "นพ. กฤตนัย วงศ์สุข"
		second["specialty"] = "กระดูกและข้อ"
		second["symptoms"] = "knee pain weeks"
		require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/appointments", second).Code)

		rec := doJSON(t, router, http.MethodGet, "/appointments?q=knee", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var list dto.AppointmentListResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		require.Equal(t, 1, list.Total)
		assert.Equal(t, "นพ. กฤตนัย วงศ์สุข", list.Items[0].DoctorName)

		rec = doJSON(t, router, http.MethodGet, "/appointments?limit=1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		assert.Equal(t, 1, list.Total)
	})

	t.Run("Delete Flow", func(t *testing.T) {
		router := testRouter(t)

		rec := doJSON(t, router, http.MethodDelete, "/appointments", nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "ต้องระบุ id ของนัดที่ต้องการลบ", decodeError(t, rec))

		rec = doJSON(t, router, http.MethodDelete, "/appointments?id=nope", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "ไม่พบนัดหมายนี้", decodeError(t, rec))

		rec = doJSON(t, router, http.MethodPost, "/appointments", validBooking())
		require.Equal(t, http.StatusCreated, rec.Code)
		var created dto.AppointmentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

		rec = doJSON(t, router, http.MethodDelete, "/appointments?id="+created.ID, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var result dto.CancelAppointmentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.True(t, result.Success)
		assert.Equal(t, created.ID, result.RemovedID)

		rec = doJSON(t, router, http.MethodDelete, "/appointments?id="+created.ID, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDoctorEndpoint(t *testing.T) {
	router := testRouter(t)

	t.Run("Full Catalog", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/doctors", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var doctors []dto.DoctorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doctors))
		assert.Len(t, doctors, 30)
	})

	t.Run("Specialty Filter", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/doctors?specialty="+urlEncode("ผิวหนัง"), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var doctors []dto.DoctorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doctors))
		require.NotEmpty(t, doctors)
		for _, d := range doctors {
			assert.Equal(t, "ผิวหนัง", d.Specialty)
		}
	})

	t.Run("Sentinel Specialty", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/doctors?specialty="+urlEncode("ทั้งหมด"), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var doctors []dto.DoctorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doctors))
		assert.Len(t, doctors, 30)
	})

	t.Run("Specialties List", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/doctors/specialties", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var specialties []string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &specialties))
		require.NotEmpty(t, specialties)
		assert.Equal(t, "ทั้งหมด", specialties[0])
	})

	t.Run("Keyword Filter", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/doctors?name="+urlEncode("เชียงใหม่"), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var doctors []dto.DoctorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doctors))
		require.NotEmpty(t, doctors)
		for _, d := range doctors {
			assert.Contains(t, d.Name+" "+d.Hospital+" "+d.Location, "เชียงใหม่")
		}
	})
}

func TestLoginEndpoint(t *testing.T) {
	router := testRouter(t)

	t.Run("Valid Credentials", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/login", map[string]string{
			"email":    "pakonchai@gmail.com",
			"password": "1234",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var result dto.LoginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "pakonchai", result.User.Name)
	})

	t.Run("Missing Fields", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/login", map[string]string{"email": "pakonchai@gmail.com"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "email และ password จำเป็น", decodeError(t, rec))
	})

	t.Run("Bad Credentials", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/login", map[string]string{
			"email":    "pakonchai@gmail.com",
			"password": "wrong",
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "อีเมลหรือรหัสผ่านไม่ถูกต้อง", decodeError(t, rec))
	})
}

func TestHealthEndpoint(t *testing.T) {
	router := testRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func urlEncode(s string) string {
	return url.QueryEscape(s)
}
