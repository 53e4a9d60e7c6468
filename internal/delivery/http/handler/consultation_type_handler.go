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

type ConsultationTypeHandler struct {
	consultationTypeUsecase usecase.ConsultationTypeUsecase
	validator               *validator.CustomValidator
}

func NewConsultationTypeHandler(consultationTypeUsecase usecase.ConsultationTypeUsecase, validator *validator.CustomValidator) *ConsultationTypeHandler {
	return &ConsultationTypeHandler{
		consultationTypeUsecase: consultationTypeUsecase,
		validator:               validator,
	}
}

func (h *ConsultationTypeHandler) CreateConsultationType(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateConsultationTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	consultationType, err := h.consultationTypeUsecase.CreateConsultationType(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create consultation type")
		return
	}

	response.Success(w, http.StatusCreated, "Consultation type created successfully", consultationType)
}

func (h *ConsultationTypeHandler) GetConsultationType(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	consultationType, err := h.consultationTypeUsecase.GetConsultationType(r.Context(), id)
	if err != nil {
		if err == usecase.ErrConsultationTypeNotFound {
			response.NotFound(w, "Consultation type not found")
			return
		}
		response.InternalServerError(w, "Failed to get consultation type")
		return
	}

	response.Success(w, http.StatusOK, "Consultation type retrieved successfully", consultationType)
}

func (h *ConsultationTypeHandler) GetActiveConsultationTypes(w http.ResponseWriter, r *http.Request) {
	consultationTypes, err := h.consultationTypeUsecase.GetActiveConsultationTypes(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get consultation types")
		return
	}

	response.Success(w, http.StatusOK, "Consultation types retrieved successfully", consultationTypes)
}

func (h *ConsultationTypeHandler) UpdateConsultationType(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req dto.UpdateConsultationTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	consultationType, err := h.consultationTypeUsecase.UpdateConsultationType(r.Context(), id, &req)
	if err != nil {
		if err == usecase.ErrConsultationTypeNotFound {
			response.NotFound(w, "Consultation type not found")
			return
		}
		response.InternalServerError(w, "Failed to update consultation type")
		return
	}

	response.Success(w, http.StatusOK, "Consultation type updated successfully", consultationType)
}

func (h *ConsultationTypeHandler) DeactivateConsultationType(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	err := h.consultationTypeUsecase.DeactivateConsultationType(r.Context(), id)
	if err != nil {
		if err == usecase.ErrConsultationTypeNotFound {
			response.NotFound(w, "Consultation type not found")
			return
		}
		response.InternalServerError(w, "Failed to deactivate consultation type")
		return
	}

	response.Success(w, http.StatusOK, "Consultation type deactivated successfully", nil)
}

func (h *ConsultationTypeHandler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid consultation type ID", nil)
		return uuid.Nil, false
	}
	return id, true
}
