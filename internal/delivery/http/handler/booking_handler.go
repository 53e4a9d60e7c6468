package handler

import (
	"encoding/json"
	"net/http"

	"appointment-booking/internal/delivery/dto"
	"appointment-booking/internal/usecase"
	"appointment-booking/pkg/response"
	"appointment-booking/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.CreateBooking(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrConsultationTypeNotFound:
			response.NotFound(w, "Consultation type not found")
		case usecase.ErrStaffNotFound:
			response.NotFound(w, "Staff member not found")
		case usecase.ErrInvalidStartTime:
			response.Error(w, http.StatusBadRequest, "Invalid start time, use RFC 3339", nil)
		case usecase.ErrSlotInPast:
			response.Error(w, http.StatusBadRequest, "Cannot book a slot in the past", nil)
		case usecase.ErrSlotUnavailable:
			response.Error(w, http.StatusConflict, "Slot is no longer available", nil)
		default:
			response.InternalServerError(w, "Failed to create booking")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Booking created successfully", booking)
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	booking, err := h.bookingUsecase.GetBooking(r.Context(), bookingID)
	if err != nil {
		if err == usecase.ErrBookingNotFound {
			response.NotFound(w, "Booking not found")
			return
		}
		response.InternalServerError(w, "Failed to get booking")
		return
	}

	response.Success(w, http.StatusOK, "Booking retrieved successfully", booking)
}

func (h *BookingHandler) GetAllBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingUsecase.GetAllBookings(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get bookings")
		return
	}

	response.Success(w, http.StatusOK, "Bookings retrieved successfully", bookings)
}

func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	err = h.bookingUsecase.CancelBooking(r.Context(), bookingID)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case usecase.ErrBookingAlreadyCancelled:
			response.Error(w, http.StatusConflict, "Booking is already cancelled", nil)
		default:
			response.InternalServerError(w, "Failed to cancel booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking cancelled successfully", nil)
}

func (h *BookingHandler) CompleteBooking(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	err = h.bookingUsecase.CompleteBooking(r.Context(), bookingID)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case usecase.ErrBookingNotConfirmed:
			response.Error(w, http.StatusConflict, "Only confirmed bookings can be completed", nil)
		default:
			response.InternalServerError(w, "Failed to complete booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking completed successfully", nil)
}
