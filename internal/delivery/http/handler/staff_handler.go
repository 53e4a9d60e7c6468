package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"appointment-booking/internal/delivery/dto"
	"appointment-booking/internal/usecase"
	"appointment-booking/pkg/response"
	"appointment-booking/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type StaffHandler struct {
	staffUsecase usecase.StaffUsecase
	validator    *validator.CustomValidator
}

func NewStaffHandler(staffUsecase usecase.StaffUsecase, validator *validator.CustomValidator) *StaffHandler {
	return &StaffHandler{
		staffUsecase: staffUsecase,
		validator:    validator,
	}
}

func (h *StaffHandler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	staff, err := h.staffUsecase.CreateStaff(r.Context(), &req)
	if err != nil {
		if err == usecase.ErrEmailAlreadyExists {
			response.Error(w, http.StatusConflict, "Email is already registered", nil)
			return
		}
		response.InternalServerError(w, "Failed to create staff member")
		return
	}

	response.Success(w, http.StatusCreated, "Staff member created successfully", staff)
}

func (h *StaffHandler) GetStaff(w http.ResponseWriter, r *http.Request) {
	staffID, ok := h.parseStaffID(w, r)
	if !ok {
		return
	}

	staff, err := h.staffUsecase.GetStaff(r.Context(), staffID)
	if err != nil {
		if err == usecase.ErrStaffNotFound {
			response.NotFound(w, "Staff member not found")
			return
		}
		response.InternalServerError(w, "Failed to get staff member")
		return
	}

	response.Success(w, http.StatusOK, "Staff member retrieved successfully", staff)
}

func (h *StaffHandler) GetAllStaff(w http.ResponseWriter, r *http.Request) {
	staff, err := h.staffUsecase.GetAllStaff(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get staff members")
		return
	}

	response.Success(w, http.StatusOK, "Staff members retrieved successfully", staff)
}

func (h *StaffHandler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	staffID, ok := h.parseStaffID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	staff, err := h.staffUsecase.UpdateStaff(r.Context(), staffID, &req)
	if err != nil {
		switch err {
		case usecase.ErrStaffNotFound:
			response.NotFound(w, "Staff member not found")
		case usecase.ErrEmailAlreadyExists:
			response.Error(w, http.StatusConflict, "Email is already registered", nil)
		default:
			response.InternalServerError(w, "Failed to update staff member")
		}
		return
	}

	response.Success(w, http.StatusOK, "Staff member updated successfully", staff)
}

func (h *StaffHandler) DeactivateStaff(w http.ResponseWriter, r *http.Request) {
	staffID, ok := h.parseStaffID(w, r)
	if !ok {
		return
	}

	err := h.staffUsecase.DeactivateStaff(r.Context(), staffID)
	if err != nil {
		if err == usecase.ErrStaffNotFound {
			response.NotFound(w, "Staff member not found")
			return
		}
		response.InternalServerError(w, "Failed to deactivate staff member")
		return
	}

	response.Success(w, http.StatusOK, "Staff member deactivated successfully", nil)
}

func (h *StaffHandler) SetWorkingHours(w http.ResponseWriter, r *http.Request) {
	staffID, ok := h.parseStaffID(w, r)
	if !ok {
		return
	}

	var req dto.SetWorkingHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	staff, err := h.staffUsecase.SetWorkingHours(r.Context(), staffID, &req)
	if err != nil {
		switch err {
		case usecase.ErrStaffNotFound:
			response.NotFound(w, "Staff member not found")
		case usecase.ErrInvalidTimeFormat:
			response.Error(w, http.StatusBadRequest, "Times must be in HH:MM format", nil)
		case usecase.ErrInvalidWorkingHours:
			response.Error(w, http.StatusBadRequest, "Close time must be after open time", nil)
		default:
			response.InternalServerError(w, "Failed to set working hours")
		}
		return
	}

	response.Success(w, http.StatusOK, "Working hours updated successfully", staff)
}

func (h *StaffHandler) AddVacation(w http.ResponseWriter, r *http.Request) {
	staffID, ok := h.parseStaffID(w, r)
	if !ok {
		return
	}

	var req dto.CreateVacationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	staff, err := h.staffUsecase.AddVacation(r.Context(), staffID, &req)
	if err != nil {
		switch err {
		case usecase.ErrStaffNotFound:
			response.NotFound(w, "Staff member not found")
		case usecase.ErrInvalidVacation:
			response.Error(w, http.StatusBadRequest, "Invalid vacation range", nil)
		default:
			response.InternalServerError(w, "Failed to add vacation")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Vacation added successfully", staff)
}

func (h *StaffHandler) RemoveVacation(w http.ResponseWriter, r *http.Request) {
	staffID, ok := h.parseStaffID(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	vacationID, err := strconv.Atoi(vars["vacation_id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid vacation ID", nil)
		return
	}

	err = h.staffUsecase.RemoveVacation(r.Context(), staffID, vacationID)
	if err != nil {
		switch err {
		case usecase.ErrStaffNotFound:
			response.NotFound(w, "Staff member not found")
		case usecase.ErrVacationNotFound:
			response.NotFound(w, "Vacation not found")
		default:
			response.InternalServerError(w, "Failed to remove vacation")
		}
		return
	}

	response.Success(w, http.StatusOK, "Vacation removed successfully", nil)
}

func (h *StaffHandler) parseStaffID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	vars := mux.Vars(r)
	staffID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid staff ID", nil)
		return uuid.Nil, false
	}
	return staffID, true
}
