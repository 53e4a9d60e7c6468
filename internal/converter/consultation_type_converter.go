package converter

import (
	"appointment-booking/internal/delivery/dto"
	"appointment-booking/internal/domain/entity"
)

// ConsultationTypeToResponse converts a ConsultationType entity to its DTO
func ConsultationTypeToResponse(consultationType *entity.ConsultationType) *dto.ConsultationTypeResponse {
	if consultationType == nil {
		return nil
	}

	return &dto.ConsultationTypeResponse{
		ID:              consultationType.ID,
		Name:            consultationType.Name,
		DurationMinutes: consultationType.DurationMinutes,
		BufferBefore:    consultationType.BufferBefore,
		BufferAfter:     consultationType.BufferAfter,
		IsActive:        consultationType.IsActive,
		DisplayOrder:    consultationType.DisplayOrder,
		CreatedAt:       consultationType.CreatedAt,
		UpdatedAt:       consultationType.UpdatedAt,
	}
}

// ConsultationTypesToResponses converts a slice of ConsultationType entities to DTOs
func ConsultationTypesToResponses(consultationTypes []entity.ConsultationType) []dto.ConsultationTypeResponse {
	responses := make([]dto.ConsultationTypeResponse, len(consultationTypes))
	for i := range consultationTypes {
		responses[i] = *ConsultationTypeToResponse(&consultationTypes[i])
	}
	return responses
}
