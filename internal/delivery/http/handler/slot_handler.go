package handler

import (
	"net/http"

	"appointment-booking/internal/delivery/dto"
	"appointment-booking/internal/usecase"
	"appointment-booking/pkg/response"
	"appointment-booking/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type SlotHandler struct {
	slotUsecase usecase.SlotUsecase
	validator   *validator.CustomValidator
}

func NewSlotHandler(slotUsecase usecase.SlotUsecase, validator *validator.CustomValidator) *SlotHandler {
	return &SlotHandler{
		slotUsecase: slotUsecase,
		validator:   validator,
	}
}

// GetSlots returns available slots across all active staff members for a
// consultation type within an optional date range.
func (h *SlotHandler) GetSlots(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parseQuery(w, r)
	if !ok {
		return
	}

	slots, err := h.slotUsecase.ComputeSlots(r.Context(), req)
	if err != nil {
		h.writeSlotError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Slots retrieved successfully", slots)
}

// GetStaffSlots returns available slots for a single staff member.
func (h *SlotHandler) GetStaffSlots(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	staffID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid staff ID", nil)
		return
	}

	req, ok := h.parseQuery(w, r)
	if !ok {
		return
	}

	slots, err := h.slotUsecase.GetStaffSlots(r.Context(), staffID, req)
	if err != nil {
		h.writeSlotError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Slots retrieved successfully", slots)
}

func (h *SlotHandler) parseQuery(w http.ResponseWriter, r *http.Request) (*dto.SlotQueryRequest, bool) {
	query := r.URL.Query()

	consultationTypeID, err := uuid.Parse(query.Get("consultation_type_id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid consultation type ID", nil)
		return nil, false
	}

	req := &dto.SlotQueryRequest{
		ConsultationTypeID: consultationTypeID,
		From:               query.Get("from"),
		To:                 query.Get("to"),
	}

	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return nil, false
	}

	return req, true
}

func (h *SlotHandler) writeSlotError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrConsultationTypeNotFound:
		response.NotFound(w, "Consultation type not found")
	case usecase.ErrStaffNotFound:
		response.NotFound(w, "Staff member not found")
	case usecase.ErrNoStaffAvailable:
		response.NotFound(w, "No active staff members are configured")
	case usecase.ErrInvalidDate:
		response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
	case usecase.ErrInvalidRange:
		response.Error(w, http.StatusBadRequest, "Invalid date range", nil)
	default:
		response.InternalServerError(w, "Failed to compute slots")
	}
}
