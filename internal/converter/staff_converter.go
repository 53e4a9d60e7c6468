package converter

import (
	"appointment-booking/internal/delivery/dto"
	"appointment-booking/internal/domain/entity"
)

// StaffToResponse converts a StaffMember entity to StaffResponse DTO
func StaffToResponse(staff *entity.StaffMember) *dto.StaffResponse {
	if staff == nil {
		return nil
	}

	response := &dto.StaffResponse{
		ID:          staff.ID,
		DisplayName: staff.DisplayName,
		Email:       staff.Email,
		IsActive:    staff.IsActive,
		CreatedAt:   staff.CreatedAt,
		UpdatedAt:   staff.UpdatedAt,
	}

	for _, h := range staff.WorkingHours {
		response.WorkingHours = append(response.WorkingHours, dto.WorkingHoursResponse{
			Weekday:   h.Weekday,
			OpenTime:  h.OpenTime,
			CloseTime: h.CloseTime,
		})
	}

	for _, v := range staff.Vacations {
		response.Vacations = append(response.Vacations, dto.VacationResponse{
			ID:        v.ID,
			StartDate: v.StartDate.Format("2006-01-02"),
			EndDate:   v.EndDate.Format("2006-01-02"),
			Reason:    v.Reason,
		})
	}

	return response
}

// StaffToResponses converts a slice of StaffMember entities to StaffResponse DTOs
func StaffToResponses(staff []entity.StaffMember) []dto.StaffResponse {
	responses := make([]dto.StaffResponse, len(staff))
	for i := range staff {
		responses[i] = *StaffToResponse(&staff[i])
	}
	return responses
}
