package http

import (
	"net/http"

	"medicare-booking/internal/delivery/http/handler"
	"medicare-booking/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	appointmentHandler *handler.AppointmentHandler
	doctorHandler      *handler.DoctorHandler
	authHandler        *handler.AuthHandler
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	appointmentHandler *handler.AppointmentHandler,
	doctorHandler *handler.DoctorHandler,
	authHandler *handler.AuthHandler,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		appointmentHandler: appointmentHandler,
		doctorHandler:      doctorHandler,
		authHandler:        authHandler,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Appointments
	r.router.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	r.router.HandleFunc("/appointments", r.appointmentHandler.ListAppointments).Methods(http.MethodGet)
	r.router.HandleFunc("/appointments", r.appointmentHandler.CancelAppointment).Methods(http.MethodDelete)

	// Doctor directory
	r.router.HandleFunc("/doctors", r.doctorHandler.ListDoctors).Methods(http.MethodGet)
	r.router.HandleFunc("/doctors/specialties", r.doctorHandler.ListSpecialties).Methods(http.MethodGet)

	// Session
	r.router.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
