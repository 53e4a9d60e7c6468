package converter

import (
	"appointment-booking/internal/delivery/dto"
	"appointment-booking/internal/domain/entity"
)

// SlotsToResponses converts computed TimeSlots to SlotResponse DTOs
func SlotsToResponses(slots []entity.TimeSlot) []dto.SlotResponse {
	responses := make([]dto.SlotResponse, len(slots))
	for i, slot := range slots {
		responses[i] = dto.SlotResponse{
			Start:     slot.Start,
			End:       slot.End,
			StaffID:   slot.StaffID,
			StaffName: slot.StaffName,
		}
	}
	return responses
}
