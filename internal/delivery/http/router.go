package http

import (
	"net/http"

	"appointment-booking/internal/delivery/http/handler"
	"appointment-booking/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                  *mux.Router
	authHandler             *handler.AuthHandler
	slotHandler             *handler.SlotHandler
	bookingHandler          *handler.BookingHandler
	staffHandler            *handler.StaffHandler
	consultationTypeHandler *handler.ConsultationTypeHandler
	authMiddleware          *middleware.AuthMiddleware
	corsMiddleware          *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	slotHandler *handler.SlotHandler,
	bookingHandler *handler.BookingHandler,
	staffHandler *handler.StaffHandler,
	consultationTypeHandler *handler.ConsultationTypeHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                  mux.NewRouter(),
		authHandler:             authHandler,
		slotHandler:             slotHandler,
		bookingHandler:          bookingHandler,
		staffHandler:            staffHandler,
		consultationTypeHandler: consultationTypeHandler,
		authMiddleware:          authMiddleware,
		corsMiddleware:          corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public booking flow: browse types, check availability, book
	api.HandleFunc("/consultation-types", r.consultationTypeHandler.GetActiveConsultationTypes).Methods(http.MethodGet)
	api.HandleFunc("/slots", r.slotHandler.GetSlots).Methods(http.MethodGet)
	api.HandleFunc("/staff/{id}/slots", r.slotHandler.GetStaffSlots).Methods(http.MethodGet)
	api.HandleFunc("/bookings", r.bookingHandler.CreateBooking).Methods(http.MethodPost)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	// Staff management (admin)
	admin.HandleFunc("/staff", r.staffHandler.CreateStaff).Methods(http.MethodPost)
	admin.HandleFunc("/staff", r.staffHandler.GetAllStaff).Methods(http.MethodGet)
	admin.HandleFunc("/staff/{id}", r.staffHandler.GetStaff).Methods(http.MethodGet)
	admin.HandleFunc("/staff/{id}", r.staffHandler.UpdateStaff).Methods(http.MethodPut)
	admin.HandleFunc("/staff/{id}", r.staffHandler.DeactivateStaff).Methods(http.MethodDelete)
	admin.HandleFunc("/staff/{id}/working-hours", r.staffHandler.SetWorkingHours).Methods(http.MethodPut)
	admin.HandleFunc("/staff/{id}/vacations", r.staffHandler.AddVacation).Methods(http.MethodPost)
	admin.HandleFunc("/staff/{id}/vacations/{vacation_id}", r.staffHandler.RemoveVacation).Methods(http.MethodDelete)

	// Consultation type management (admin)
	admin.HandleFunc("/consultation-types", r.consultationTypeHandler.CreateConsultationType).Methods(http.MethodPost)
	admin.HandleFunc("/consultation-types/{id}", r.consultationTypeHandler.GetConsultationType).Methods(http.MethodGet)
	admin.HandleFunc("/consultation-types/{id}", r.consultationTypeHandler.UpdateConsultationType).Methods(http.MethodPut)
	admin.HandleFunc("/consultation-types/{id}", r.consultationTypeHandler.DeactivateConsultationType).Methods(http.MethodDelete)

	// Booking management (admin and staff)
	bookingAdmin := api.PathPrefix("/admin").Subrouter()
	bookingAdmin.Use(r.authMiddleware.Authenticate)
	bookingAdmin.Use(middleware.RequireStaffOrAdmin)
	bookingAdmin.HandleFunc("/bookings", r.bookingHandler.GetAllBookings).Methods(http.MethodGet)
	bookingAdmin.HandleFunc("/bookings/{id}", r.bookingHandler.GetBooking).Methods(http.MethodGet)
	bookingAdmin.HandleFunc("/bookings/{id}/cancel", r.bookingHandler.CancelBooking).Methods(http.MethodPost)
	bookingAdmin.HandleFunc("/bookings/{id}/complete", r.bookingHandler.CompleteBooking).Methods(http.MethodPost)

	// User management (admin)
	admin.HandleFunc("/users", r.authHandler.CreateUser).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
