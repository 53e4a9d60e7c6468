package converter

import (
	"appointment-booking/internal/delivery/dto"
	"appointment-booking/internal/domain/entity"

	"github.com/google/uuid"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	response := &dto.BookingResponse{
		ID:                 booking.ID,
		StaffID:            booking.StaffID,
		ConsultationTypeID: booking.ConsultationTypeID,
		CustomerName:       booking.CustomerName,
		CustomerEmail:      booking.CustomerEmail,
		StartTime:          booking.StartTime,
		EndTime:            booking.EndTime,
		Status:             string(booking.Status),
		CreatedAt:          booking.CreatedAt,
		UpdatedAt:          booking.UpdatedAt,
	}

	if booking.Staff.ID != uuid.Nil {
		response.StaffName = booking.Staff.DisplayName
	}
	if booking.ConsultationType.ID != uuid.Nil {
		response.ConsultationType = booking.ConsultationType.Name
	}

	return response
}

// BookingsToResponses converts a slice of Booking entities to BookingResponse DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = *BookingToResponse(&bookings[i])
	}
	return responses
}
